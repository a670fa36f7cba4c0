package rollout

import "github.com/near/borsh-go"

// SubnetUpdatePayload is the wire shape a governance proposal carries
// to move one subnet to one replica version. The engine never encodes
// or decodes this itself (proposal reading/writing is an out-of-scope
// collaborator, spec.md §1) — it exists so every caller that does touch
// the chain shares one canonical encoding, the same way the teacher's
// on-chain account layouts in smartcontract/sdk/go/serviceability are
// the single source of truth for their wire format.
type SubnetUpdatePayload struct {
	SubnetID         [32]byte
	ReplicaVersionID string
}

// MarshalBorsh encodes the payload using the on-chain instruction
// encoding (github.com/near/borsh-go), matching the teacher's direct
// dependency on the same library.
func (p SubnetUpdatePayload) MarshalBorsh() ([]byte, error) {
	return borsh.Serialize(p)
}

// UnmarshalSubnetUpdatePayload decodes a SubnetUpdatePayload previously
// produced by MarshalBorsh.
func UnmarshalSubnetUpdatePayload(data []byte) (SubnetUpdatePayload, error) {
	var p SubnetUpdatePayload
	if err := borsh.Deserialize(&p, data); err != nil {
		return SubnetUpdatePayload{}, newError(ErrorKindInvalidPlan, "UnmarshalSubnetUpdatePayload",
			"malformed subnet-update proposal payload", err)
	}
	return p, nil
}

// UnassignedUpdatePayload is the wire shape for an unassigned-nodes
// update proposal. ReplicaVersion is optional on the chain; HasVersion
// distinguishes "no version set" from a zero-value string, since borsh
// has no native concept of Go's empty string vs. absent field.
type UnassignedUpdatePayload struct {
	HasVersion     bool
	ReplicaVersion string
}

func (p UnassignedUpdatePayload) MarshalBorsh() ([]byte, error) {
	return borsh.Serialize(p)
}

func UnmarshalUnassignedUpdatePayload(data []byte) (UnassignedUpdatePayload, error) {
	var p UnassignedUpdatePayload
	if err := borsh.Deserialize(&p, data); err != nil {
		return UnassignedUpdatePayload{}, newError(ErrorKindInvalidPlan, "UnmarshalUnassignedUpdatePayload",
			"malformed unassigned-update proposal payload", err)
	}
	return p, nil
}
