package angzarr

import (
	"github.com/google/uuid"

	angzarrpb "angzarr/proto/angzarr"
)

// ComputeRoot derives a deterministic UUID v5 from a domain and business
// key: hash("angzarr" + domain + businessKey) under the OID namespace.
// Not required by any router; the example saga and process manager in
// this module use it to map a natural key onto a stable aggregate root.
func ComputeRoot(domain, businessKey string) uuid.UUID {
	seed := "angzarr" + domain + businessKey
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed))
}

// ToProtoUUID converts a uuid.UUID to the wire UUID type.
func ToProtoUUID(id uuid.UUID) *angzarrpb.UUID {
	b := id[:]
	return &angzarrpb.UUID{Value: b}
}

// FromProtoUUID parses the wire UUID type back into a uuid.UUID.
func FromProtoUUID(u *angzarrpb.UUID) (uuid.UUID, error) {
	return uuid.FromBytes(u.GetValue())
}

// CoverKey derives a stable map key for a cover's aggregate root, for
// building the destinations map an EventRouter handler receives.
func CoverKey(cover *angzarrpb.Cover) string {
	if id, err := FromProtoUUID(cover.GetRoot()); err == nil {
		return id.String()
	}
	return string(cover.GetRoot().GetValue())
}
