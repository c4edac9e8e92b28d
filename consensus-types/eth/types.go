// Package eth defines the phase0 consensus containers and their canonical
// SSZ serialization.
package eth

import (
	"github.com/prysmaticlabs/go-bitfield"
	types "github.com/prysmaticlabs/phase0/consensus-types/primitives"
)

//go:generate go run github.com/ferranbt/fastssz/sszgen --path . --include ../primitives --objs Fork,ForkData,Checkpoint,Validator,AttestationData,IndexedAttestation,PendingAttestation,Attestation,Eth1Data,BeaconBlockHeader,SignedBeaconBlockHeader,ProposerSlashing,AttesterSlashing,DepositData,DepositMessage,Deposit,VoluntaryExit,SignedVoluntaryExit,Transfer,BeaconBlockBody,BeaconBlock,SignedBeaconBlock,SigningData,HistoricalBatch --output generated.ssz.go

// Fork structure used for indicating beacon chain versioning and forks.
type Fork struct {
	PreviousVersion []byte      `json:"previous_version" ssz-size:"4"`
	CurrentVersion  []byte      `json:"current_version" ssz-size:"4"`
	Epoch           types.Epoch `json:"epoch"`
}

// ForkData used for the fork digest and domain computations.
type ForkData struct {
	CurrentVersion        []byte `json:"current_version" ssz-size:"4"`
	GenesisValidatorsRoot []byte `json:"genesis_validators_root" ssz-size:"32"`
}

// Checkpoint references an epoch boundary block for justification and
// finalization purposes.
type Checkpoint struct {
	Epoch types.Epoch `json:"epoch"`
	Root  []byte      `json:"root" ssz-size:"32"`
}

// Validator is the registry item tracking a staker's balance, keys and
// lifecycle epochs.
type Validator struct {
	PublicKey                  []byte      `json:"public_key" ssz-size:"48"`
	WithdrawalCredentials      []byte      `json:"withdrawal_credentials" ssz-size:"32"`
	EffectiveBalance           uint64      `json:"effective_balance"`
	Slashed                    bool        `json:"slashed"`
	ActivationEligibilityEpoch types.Epoch `json:"activation_eligibility_epoch"`
	ActivationEpoch            types.Epoch `json:"activation_epoch"`
	ExitEpoch                  types.Epoch `json:"exit_epoch"`
	WithdrawableEpoch          types.Epoch `json:"withdrawable_epoch"`
}

// AttestationData is the slot, committee and vote content an attestation
// commits to.
type AttestationData struct {
	Slot            types.Slot           `json:"slot"`
	CommitteeIndex  types.CommitteeIndex `json:"committee_index"`
	BeaconBlockRoot []byte               `json:"beacon_block_root" ssz-size:"32"`
	Source          *Checkpoint          `json:"source"`
	Target          *Checkpoint          `json:"target"`
}

// IndexedAttestation names its attesters by validator index rather than by
// committee bit.
type IndexedAttestation struct {
	AttestingIndices []uint64         `json:"attesting_indices" ssz-max:"2048"`
	Data             *AttestationData `json:"data"`
	Signature        []byte           `json:"signature" ssz-size:"96"`
}

// PendingAttestation is an attestation stored in state until epoch
// processing, along with its inclusion metadata.
type PendingAttestation struct {
	AggregationBits bitfield.Bitlist     `json:"aggregation_bits" ssz:"bitlist" ssz-max:"2048"`
	Data            *AttestationData     `json:"data"`
	InclusionDelay  types.Slot           `json:"inclusion_delay"`
	ProposerIndex   types.ValidatorIndex `json:"proposer_index"`
}

// Attestation is an aggregated vote for a beacon chain checkpoint pair.
type Attestation struct {
	AggregationBits bitfield.Bitlist `json:"aggregation_bits" ssz:"bitlist" ssz-max:"2048"`
	Data            *AttestationData `json:"data"`
	Signature       []byte           `json:"signature" ssz-size:"96"`
}

// Eth1Data is the eth1 chain view voted on within blocks.
type Eth1Data struct {
	DepositRoot  []byte `json:"deposit_root" ssz-size:"32"`
	DepositCount uint64 `json:"deposit_count"`
	BlockHash    []byte `json:"block_hash" ssz-size:"32"`
}

// BeaconBlockHeader is a block with its body replaced by the body root.
type BeaconBlockHeader struct {
	Slot          types.Slot           `json:"slot"`
	ProposerIndex types.ValidatorIndex `json:"proposer_index"`
	ParentRoot    []byte               `json:"parent_root" ssz-size:"32"`
	StateRoot     []byte               `json:"state_root" ssz-size:"32"`
	BodyRoot      []byte               `json:"body_root" ssz-size:"32"`
}

// SignedBeaconBlockHeader is a beacon block header plus its proposer
// signature.
type SignedBeaconBlockHeader struct {
	Header    *BeaconBlockHeader `json:"header"`
	Signature []byte             `json:"signature" ssz-size:"96"`
}

// ProposerSlashing is proof a proposer signed two conflicting headers for
// the same slot.
type ProposerSlashing struct {
	Header_1 *SignedBeaconBlockHeader `json:"header_1"`
	Header_2 *SignedBeaconBlockHeader `json:"header_2"`
}

// AttesterSlashing is proof a set of validators signed two slashable
// attestations.
type AttesterSlashing struct {
	Attestation_1 *IndexedAttestation `json:"attestation_1"`
	Attestation_2 *IndexedAttestation `json:"attestation_2"`
}

// DepositData is the content a staker signs when depositing.
type DepositData struct {
	PublicKey             []byte `json:"public_key" ssz-size:"48"`
	WithdrawalCredentials []byte `json:"withdrawal_credentials" ssz-size:"32"`
	Amount                uint64 `json:"amount"`
	Signature             []byte `json:"signature" ssz-size:"96"`
}

// DepositMessage is the unsigned portion of DepositData used to compute the
// deposit signing root.
type DepositMessage struct {
	PublicKey             []byte `json:"public_key" ssz-size:"48"`
	WithdrawalCredentials []byte `json:"withdrawal_credentials" ssz-size:"32"`
	Amount                uint64 `json:"amount"`
}

// Deposit is a deposit datum plus its Merkle proof against the eth1 deposit
// tree root.
type Deposit struct {
	Proof [][]byte     `json:"proof" ssz-size:"33,32"`
	Data  *DepositData `json:"data"`
}

// VoluntaryExit requests a validator's orderly exit from the registry.
type VoluntaryExit struct {
	Epoch          types.Epoch          `json:"epoch"`
	ValidatorIndex types.ValidatorIndex `json:"validator_index"`
}

// SignedVoluntaryExit is a voluntary exit plus the exiting validator's
// signature.
type SignedVoluntaryExit struct {
	Exit      *VoluntaryExit `json:"exit"`
	Signature []byte         `json:"signature" ssz-size:"96"`
}

// Transfer moves balance between validators while the sender is withdrawable
// or was never activated.
type Transfer struct {
	Sender    types.ValidatorIndex `json:"sender"`
	Recipient types.ValidatorIndex `json:"recipient"`
	Amount    uint64               `json:"amount"`
	Fee       uint64               `json:"fee"`
	Slot      types.Slot           `json:"slot"`
	Pubkey    []byte               `json:"pubkey" ssz-size:"48"`
	Signature []byte               `json:"signature" ssz-size:"96"`
}

// BeaconBlockBody carries the operations a block applies to the state.
type BeaconBlockBody struct {
	RandaoReveal      []byte                 `json:"randao_reveal" ssz-size:"96"`
	Eth1Data          *Eth1Data              `json:"eth1_data"`
	Graffiti          []byte                 `json:"graffiti" ssz-size:"32"`
	ProposerSlashings []*ProposerSlashing    `json:"proposer_slashings" ssz-max:"16"`
	AttesterSlashings []*AttesterSlashing    `json:"attester_slashings" ssz-max:"2"`
	Attestations      []*Attestation         `json:"attestations" ssz-max:"128"`
	Deposits          []*Deposit             `json:"deposits" ssz-max:"16"`
	VoluntaryExits    []*SignedVoluntaryExit `json:"voluntary_exits" ssz-max:"16"`
	Transfers         []*Transfer            `json:"transfers" ssz-max:"16"`
}

// BeaconBlock is the beacon chain block structure.
type BeaconBlock struct {
	Slot          types.Slot           `json:"slot"`
	ProposerIndex types.ValidatorIndex `json:"proposer_index"`
	ParentRoot    []byte               `json:"parent_root" ssz-size:"32"`
	StateRoot     []byte               `json:"state_root" ssz-size:"32"`
	Body          *BeaconBlockBody     `json:"body"`
}

// SignedBeaconBlock is a beacon block plus the proposer signature.
type SignedBeaconBlock struct {
	Block     *BeaconBlock `json:"block"`
	Signature []byte       `json:"signature" ssz-size:"96"`
}

// SigningData computes the signing root as the root of (object root, domain).
type SigningData struct {
	ObjectRoot []byte `json:"object_root" ssz-size:"32"`
	Domain     []byte `json:"domain" ssz-size:"32"`
}

// HistoricalBatch holds the block and state root vectors accumulated over
// one historical period. Sized for the mainnet preset.
type HistoricalBatch struct {
	BlockRoots [][]byte `json:"block_roots" ssz-size:"8192,32"`
	StateRoots [][]byte `json:"state_roots" ssz-size:"8192,32"`
}
