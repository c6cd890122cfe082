// Package access decides whether an authenticated actor may perform an action
// on a record. Ownership is always checked against profile ids, never usernames.
package access

import (
	"fmt"

	"panchayat.backend/internal/domain/entities"
	domainerrors "panchayat.backend/internal/domain/errors"
)

// Actor is the resolved identity behind a request.
type Actor struct {
	Username  string
	Role      entities.UserRole
	ProfileID uint
}

// ActorFromIdentity builds the actor for a loaded identity.
func ActorFromIdentity(id *entities.Identity) Actor {
	if id == nil || id.User == nil {
		return Actor{}
	}
	return Actor{Username: id.User.Username, Role: id.User.Role, ProfileID: id.ProfileID()}
}

// Action is an operation on a resource.
type Action string

const (
	Read         Action = "read"
	Create       Action = "create"
	Update       Action = "update"
	Delete       Action = "delete"
	Verify       Action = "verify"
	UpdateStatus Action = "update_status"
	UpdateCost   Action = "update_cost"
	Decide       Action = "decide"
)

// Resource is a kind of record.
type Resource string

const (
	User              Resource = "user"
	ActivityLog       Resource = "activity_log"
	CitizenProfile    Resource = "citizen_profile"
	Asset             Resource = "asset"
	Family            Resource = "family"
	Issue             Resource = "issue"
	Document          Resource = "document"
	FinancialData     Resource = "financial_data"
	WelfareScheme     Resource = "welfare_scheme"
	WelfareEnrol      Resource = "welfare_enrol"
	Infrastructure    Resource = "infrastructure"
	EnvironmentalData Resource = "environmental_data"
)

// Target identifies the record an action applies to. CitizenID and AgencyID
// carry the owning profile id when the record has one.
type Target struct {
	Resource  Resource
	CitizenID uint
	AgencyID  uint
}

// On returns a target with no owner.
func On(r Resource) Target {
	return Target{Resource: r}
}

// OwnedByCitizen returns a target owned by a citizen profile.
func OwnedByCitizen(r Resource, citizenID uint) Target {
	return Target{Resource: r, CitizenID: citizenID}
}

// OwnedByAgency returns a target owned by an agency profile.
func OwnedByAgency(r Resource, agencyID uint) Target {
	return Target{Resource: r, AgencyID: agencyID}
}

type scope int

const (
	anyRecord scope = iota
	ownCitizen
	ownAgency
)

type grant struct {
	actions []Action
	scope   scope
}

var policy = map[entities.UserRole]map[Resource]grant{
	entities.RoleCitizen: {
		CitizenProfile: {actions: []Action{Read, Update}, scope: ownCitizen},
		Asset:          {actions: []Action{Read}, scope: ownCitizen},
		Family:         {actions: []Action{Read}, scope: ownCitizen},
		Document:       {actions: []Action{Read}, scope: ownCitizen},
		FinancialData:  {actions: []Action{Read}, scope: ownCitizen},
		Issue:          {actions: []Action{Read, Create, Delete}, scope: ownCitizen},
		WelfareEnrol:   {actions: []Action{Read, Create, Delete}, scope: ownCitizen},
		WelfareScheme:  {actions: []Action{Read}, scope: anyRecord},
		Infrastructure: {actions: []Action{Read}, scope: anyRecord},
	},
	entities.RoleAdmin: {
		User:        {actions: []Action{Read, Verify, Delete}, scope: anyRecord},
		ActivityLog: {actions: []Action{Read}, scope: anyRecord},
	},
	entities.RoleGovernmentAgency: {
		WelfareScheme:  {actions: []Action{Read, Create, Delete}, scope: ownAgency},
		Infrastructure: {actions: []Action{Read, Create}, scope: ownAgency},
	},
	entities.RolePanchayatEmployee: {
		Asset:             {actions: []Action{Read, Create, Update, Delete}, scope: anyRecord},
		Family:            {actions: []Action{Read, Create, Update, Delete}, scope: anyRecord},
		Issue:             {actions: []Action{Read, UpdateStatus}, scope: anyRecord},
		Document:          {actions: []Action{Read, Create, Delete}, scope: anyRecord},
		FinancialData:     {actions: []Action{Read, Create, Update, Delete}, scope: anyRecord},
		WelfareScheme:     {actions: []Action{Read}, scope: anyRecord},
		WelfareEnrol:      {actions: []Action{Read, Decide}, scope: anyRecord},
		Infrastructure:    {actions: []Action{Read, UpdateCost}, scope: anyRecord},
		EnvironmentalData: {actions: []Action{Read, Create, Update, Delete}, scope: anyRecord},
	},
}

// Authorize returns nil when actor may perform action on target, an
// Unauthorized error for an anonymous actor and a Forbidden error otherwise.
func Authorize(actor Actor, action Action, target Target) error {
	if actor.Username == "" || !actor.Role.Valid() {
		return domainerrors.Unauthorized("authentication required")
	}
	if !Can(actor, action, target) {
		return domainerrors.Forbidden(fmt.Sprintf("%s may not %s %s", actor.Role, action, target.Resource))
	}
	return nil
}

// Can reports whether actor may perform action on target.
func Can(actor Actor, action Action, target Target) bool {
	g, ok := policy[actor.Role][target.Resource]
	if !ok || !g.allows(action) {
		return false
	}
	switch g.scope {
	case ownCitizen:
		return actor.ProfileID != 0 && target.CitizenID == actor.ProfileID
	case ownAgency:
		return actor.ProfileID != 0 && target.AgencyID == actor.ProfileID
	}
	return true
}

func (g grant) allows(action Action) bool {
	for _, a := range g.actions {
		if a == action {
			return true
		}
	}
	return false
}
