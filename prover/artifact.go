package prover

import (
	"bytes"
	"io"

	"github.com/consensys/gnark-crypto/ecc"
	native_groth16 "github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"
	"github.com/fxamacker/cbor/v2"
)

// Artifact is the proof artifact triple spec.md §3 describes: the proof
// together with its public inputs, and the circuit kind identifying which
// cached CommonData a recursive verifier must load to check it. The
// underlying CommonData itself is not duplicated per artifact -- it is
// addressed by Kind and looked up in the prover's Cache -- since spec.md
// §5 specifies it is shared, read-only, per-game state, not per-proof.
type Artifact struct {
	Kind          Kind
	Proof         []byte
	PublicWitness []byte
}

// MarshalArtifact encodes an Artifact with CBOR's core deterministic
// encoding, the same encoding mode the reference constraint-system
// serializer uses, so re-encoding the same artifact always produces the
// same bytes.
func MarshalArtifact(a Artifact) ([]byte, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := enc.NewEncoder(&buf).Encode(a); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalArtifact decodes bytes produced by MarshalArtifact, or any
// reader of them, mirroring the reference decoder's generous array/map
// size limits (proof artifacts are small; the limits exist only to reject
// truncated or adversarial input cleanly instead of allocating unbounded
// memory).
func UnmarshalArtifact(r io.Reader) (Artifact, error) {
	dm, err := cbor.DecOptions{
		MaxArrayElements: 134217728,
		MaxMapPairs:      134217728,
	}.DecMode()
	if err != nil {
		return Artifact{}, err
	}
	var a Artifact
	if err := dm.NewDecoder(r).Decode(&a); err != nil {
		return Artifact{}, err
	}
	return a, nil
}

// NewArtifact serializes a proof and its public witness (both of which
// implement gnark's own binary encodings) into an Artifact tagged with the
// circuit kind they belong to.
func NewArtifact(kind Kind, proof native_groth16.Proof, pub witness.Witness) (Artifact, error) {
	var proofBuf bytes.Buffer
	if _, err := proof.WriteTo(&proofBuf); err != nil {
		return Artifact{}, err
	}
	pubBytes, err := pub.MarshalBinary()
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{Kind: kind, Proof: proofBuf.Bytes(), PublicWitness: pubBytes}, nil
}

// DecodeProof reverses NewArtifact's proof encoding.
func DecodeProof(a Artifact) (native_groth16.Proof, error) {
	proof := native_groth16.NewProof(ecc.BN254)
	if _, err := proof.ReadFrom(bytes.NewReader(a.Proof)); err != nil {
		return nil, err
	}
	return proof, nil
}

// DecodePublicWitness reverses NewArtifact's public-witness encoding.
func DecodePublicWitness(a Artifact) (witness.Witness, error) {
	pub, err := witness.New(ecc.BN254.ScalarField())
	if err != nil {
		return nil, err
	}
	if err := pub.UnmarshalBinary(a.PublicWitness); err != nil {
		return nil, err
	}
	return pub, nil
}
