package rollout

import (
	"encoding/json"
	"strings"

	"github.com/gagliardetto/solana-go"
)

// MinPrefixLen is the shortest subnet prefix a plan is allowed to use to
// identify a subnet. Shorter prefixes are rejected at plan-parse time
// (spec.md §9 design notes).
const MinPrefixLen = 5

// SubnetID is the fleet's principal identifier for a subnet: a 32-byte
// account key with a stable base58 textual form. Reusing solana.PublicKey
// gives us that representation and its String()/parsing for free, the
// same way the teacher's device and link records carry a [32]byte PubKey
// rendered through base58 (smartcontract/sdk/go/serviceability).
type SubnetID struct {
	key solana.PublicKey
}

// NewSubnetID wraps a raw 32-byte principal.
func NewSubnetID(key solana.PublicKey) SubnetID {
	return SubnetID{key: key}
}

// ParseSubnetID decodes a base58 textual principal.
func ParseSubnetID(text string) (SubnetID, error) {
	key, err := solana.PublicKeyFromBase58(text)
	if err != nil {
		return SubnetID{}, newError(ErrorKindInvalidPlan, "ParseSubnetID", "invalid subnet principal: "+text, err)
	}
	return SubnetID{key: key}, nil
}

// String renders the base58 textual form.
func (s SubnetID) String() string {
	return s.key.String()
}

// HasPrefix reports whether this subnet's textual id starts with prefix.
func (s SubnetID) HasPrefix(prefix string) bool {
	return strings.HasPrefix(s.key.String(), prefix)
}

// Equal compares two subnet ids by underlying key.
func (s SubnetID) Equal(other SubnetID) bool {
	return s.key.Equals(other.key)
}

// MarshalJSON renders the base58 textual form, so snapshot fixtures can
// name subnets the same way the plan file does.
func (s SubnetID) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.key.String())
}

// UnmarshalJSON parses a base58 textual principal.
func (s *SubnetID) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	id, err := ParseSubnetID(text)
	if err != nil {
		return err
	}
	*s = id
	return nil
}

// resolvePrefix finds the single subnet in subnets whose textual id
// starts with prefix. It fails with ErrUnknownSubnet if none match and
// ErrAmbiguousPrefix if more than one matches, per spec.md invariant 5.
func resolvePrefix(subnets []SubnetState, prefix string) (SubnetState, error) {
	var match *SubnetState
	for i := range subnets {
		if subnets[i].ID.HasPrefix(prefix) {
			if match != nil {
				return SubnetState{}, newError(ErrorKindAmbiguousPrefix, "resolvePrefix",
					"prefix \""+prefix+"\" matches more than one subnet", nil)
			}
			match = &subnets[i]
		}
	}
	if match == nil {
		return SubnetState{}, newError(ErrorKindUnknownSubnet, "resolvePrefix",
			"prefix \""+prefix+"\" matches no subnet in the fleet", nil)
	}
	return *match, nil
}
