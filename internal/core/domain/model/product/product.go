package product

import (
	"errors"
	"fmt"
	"strings"

	"farmaya/internal/core/domain/model/kernel"
	"farmaya/internal/pkg/errs"
	"farmaya/internal/pkg/guard"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")
)

// Product is a catalog item owned by one pharmacy. Price is stored in cents
// to avoid floating point money arithmetic. The requires-prescription flag is
// copied onto order line items at checkout time, so later catalog edits never
// change the prescription requirements of existing orders.
type Product struct {
	id                   kernel.UUID
	pharmacyID           kernel.UUID
	name                 string
	presentation         string
	description          string
	priceCents           int64
	stock                int
	requiresPrescription bool

	guard guard.ConstructorGuard
}

// NewProduct creates a validated catalog item for a pharmacy.
func NewProduct(
	id, pharmacyID kernel.UUID,
	name, presentation, description string,
	priceCents int64,
	stock int,
	requiresPrescription bool,
) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setPharmacyID(pharmacyID),
		p.setName(name),
		p.setPriceCents(priceCents),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	p.presentation = strings.TrimSpace(presentation)
	p.description = strings.TrimSpace(description)
	p.requiresPrescription = requiresPrescription
	return p, nil
}

// RestoreProduct reconstructs a Product from persistence.
func RestoreProduct(
	id, pharmacyID kernel.UUID,
	name, presentation, description string,
	priceCents int64,
	stock int,
	requiresPrescription bool,
) (*Product, error) {
	return NewProduct(id, pharmacyID, name, presentation, description, priceCents, stock, requiresPrescription)
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// PharmacyID returns the identifier of the owning pharmacy.
func (p *Product) PharmacyID() kernel.UUID {
	return p.pharmacyID
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Presentation returns the dosage form description, possibly empty.
func (p *Product) Presentation() string {
	return p.presentation
}

// Description returns the free-text description, possibly empty.
func (p *Product) Description() string {
	return p.description
}

// PriceCents returns the unit price in cents.
func (p *Product) PriceCents() int64 {
	return p.priceCents
}

// Stock returns the units currently available.
func (p *Product) Stock() int {
	return p.stock
}

// RequiresPrescription reports whether ordering this product requires an
// uploaded prescription document.
func (p *Product) RequiresPrescription() bool {
	return p.requiresPrescription
}

// HasStock reports whether the requested quantity can be served.
func (p *Product) HasStock(quantity int) bool {
	return quantity > 0 && p.stock >= quantity
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setPharmacyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.pharmacyID = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("nombre")
	}
	p.name = name
	return nil
}

func (p *Product) setPriceCents(priceCents int64) error {
	if priceCents < 0 {
		return errs.NewValueIsInvalidErrorWithCause("precio",
			fmt.Errorf("%d is not a valid price", priceCents))
	}
	p.priceCents = priceCents
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock",
			fmt.Errorf("%d is not a valid stock count", stock))
	}
	p.stock = stock
	return nil
}
