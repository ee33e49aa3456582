package model

import "encoding/json"

// Scope is a user's effective data visibility, resolved at login or per
// request: every LGA for admins, the current grant set for everyone else.
// An empty non-admin scope is legal and means "no visible regions".
type Scope struct {
	All  bool
	LGAs []string
}

// AllScope is the admin scope covering every LGA.
func AllScope() Scope {
	return Scope{All: true}
}

// GrantScope builds a scope from an explicit grant set.
func GrantScope(lgas []string) Scope {
	if lgas == nil {
		lgas = []string{}
	}
	return Scope{LGAs: lgas}
}

// Allows reports whether the scope covers the given LGA.
func (s Scope) Allows(lga string) bool {
	if s.All {
		return true
	}
	for _, name := range s.LGAs {
		if name == lga {
			return true
		}
	}
	return false
}

// MarshalJSON renders the literal string "all" for an admin scope and the
// grant list (never null) otherwise, which is the shape the dashboard's
// route guards expect in the login response.
func (s Scope) MarshalJSON() ([]byte, error) {
	if s.All {
		return json.Marshal("all")
	}
	if s.LGAs == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(s.LGAs)
}
