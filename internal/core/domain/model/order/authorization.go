package order

import "farmaya/internal/core/domain/model/account"

// transitionAuthority is the table of allowed status transitions per role:
// (role, current status, requested status) -> allowed. Authorization is a
// lookup here instead of nested conditionals in the handlers.
//
// Pharmacies may request any valid target from any non-terminal state; the
// acceptance gate and the courier consistency invariant are enforced
// separately by the aggregate. Couriers are restricted to the delivery leg of
// the lifecycle. Customers and any other role have no entries and are always
// denied.
type transitionAuthority map[account.Role]map[Status]map[Status]bool

func buildTransitionAuthority() transitionAuthority {
	authority := transitionAuthority{
		account.Farmacia:   {},
		account.Repartidor: {},
	}

	// Pharmacy: owner of the order's pharmacy side may move the order
	// anywhere as long as it is still in flight. Terminal states have no
	// outgoing entries for any role. Guards beyond authority (acceptance
	// gate, courier consistency) are applied by ChangeStatus.
	for from := range getValidStatusStrings() {
		if from.IsTerminal() {
			continue
		}
		authority[account.Farmacia][from] = map[Status]bool{}
		for to := range getValidStatusStrings() {
			authority[account.Farmacia][from][to] = true
		}
	}

	// Courier: en_camino only from claimable states, delivery outcomes only
	// while en route.
	authority[account.Repartidor] = map[Status]map[Status]bool{
		Aceptado:      {EnCamino: true},
		EnPreparacion: {EnCamino: true},
		EnCamino:      {Entregado: true, NoEntregado: true},
	}

	return authority
}

var statusTransitionAuthority = buildTransitionAuthority()

// mayTransition reports whether the role is authorized to request the
// transition from the current status to the target status.
func mayTransition(role account.Role, from, to Status) bool {
	byFrom, ok := statusTransitionAuthority[role]
	if !ok {
		return false
	}
	byTo, ok := byFrom[from]
	if !ok {
		return false
	}
	return byTo[to]
}
