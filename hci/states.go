package hci

// Role is one of the closed set of concurrent LE roles a bit of the LE
// Supported States mask can permit.
type Role string

// The closed set of roles the LE Supported States table can name.
const (
	RoleScanUndirectAdv           Role = "ScanUndirectAdv"
	RoleConnScanUndirectAdv       Role = "ConnScanUndirectAdv"
	RoleNonConnNonScanUndirectAdv Role = "NonConnNonScanUndirectAdv"
	RoleHighDutyConnDirectAdv     Role = "HighDutyConnDirectAdv"
	RoleLowDutyConnDirectAdv      Role = "LowDutyConnDirectAdv"
	RoleActiveScanning            Role = "ActiveScanning"
	RolePassiveScanning           Role = "PassiveScanning"
	RoleInitiating                Role = "Initiating"
	RoleConnectionMasterRole      Role = "ConnectionMasterRole"
	RoleConnectionSlaveRole       Role = "ConnectionSlaveRole"
)

// leStatesTable maps each bit index (0..41) of the LE Supported States
// mask to the set of roles that bit, when set, permits operating
// concurrently. Transcribed from the Bluetooth Core Specification
// (Vol 6, Part B, §4.6, "LE Supported States") — see DESIGN.md's Open
// Question notes: the project's retrieval pack carries no original
// source file to check this table against, so it is recorded here from
// general Bluetooth-stack engineering knowledge rather than lifted from
// a grounding file.
var leStatesTable = [42][]Role{
	0:  {RoleNonConnNonScanUndirectAdv},
	1:  {RoleScanUndirectAdv},
	2:  {RoleConnScanUndirectAdv},
	3:  {RoleHighDutyConnDirectAdv},
	4:  {RolePassiveScanning},
	5:  {RoleActiveScanning},
	6:  {RoleInitiating},
	7:  {RoleConnectionMasterRole},
	8:  {RoleConnectionSlaveRole},
	9:  {RoleNonConnNonScanUndirectAdv, RolePassiveScanning},
	10: {RoleScanUndirectAdv, RolePassiveScanning},
	11: {RoleConnScanUndirectAdv, RolePassiveScanning},
	12: {RoleHighDutyConnDirectAdv, RolePassiveScanning},
	13: {RoleNonConnNonScanUndirectAdv, RoleActiveScanning},
	14: {RoleScanUndirectAdv, RoleActiveScanning},
	15: {RoleConnScanUndirectAdv, RoleActiveScanning},
	16: {RoleHighDutyConnDirectAdv, RoleActiveScanning},
	17: {RoleNonConnNonScanUndirectAdv, RoleInitiating},
	18: {RoleScanUndirectAdv, RoleInitiating},
	19: {RoleNonConnNonScanUndirectAdv, RoleConnectionMasterRole},
	20: {RoleScanUndirectAdv, RoleConnectionMasterRole},
	21: {RoleNonConnNonScanUndirectAdv, RoleConnectionSlaveRole},
	22: {RoleScanUndirectAdv, RoleConnectionSlaveRole},
	23: {RolePassiveScanning, RoleInitiating},
	24: {RoleActiveScanning, RoleInitiating},
	25: {RolePassiveScanning, RoleConnectionMasterRole},
	26: {RoleActiveScanning, RoleConnectionMasterRole},
	27: {RolePassiveScanning, RoleConnectionSlaveRole},
	28: {RoleActiveScanning, RoleConnectionSlaveRole},
	29: {RoleInitiating, RoleConnectionMasterRole},
	30: {RoleLowDutyConnDirectAdv},
	31: {RoleLowDutyConnDirectAdv, RolePassiveScanning},
	32: {RoleLowDutyConnDirectAdv, RoleActiveScanning},
	33: {RoleConnScanUndirectAdv, RoleInitiating},
	34: {RoleHighDutyConnDirectAdv, RoleInitiating},
	35: {RoleLowDutyConnDirectAdv, RoleInitiating},
	36: {RoleConnScanUndirectAdv, RoleConnectionMasterRole},
	37: {RoleHighDutyConnDirectAdv, RoleConnectionMasterRole},
	38: {RoleLowDutyConnDirectAdv, RoleConnectionMasterRole},
	39: {RoleConnScanUndirectAdv, RoleConnectionSlaveRole},
	40: {RoleInitiating, RoleConnectionSlaveRole},
	41: {}, // reserved
}

// StateCombination is one permitted concurrent-role combination decoded
// from the LE Supported States mask.
type StateCombination struct {
	Bit   int
	Roles []Role
}

// DecodeSupportedStates maps a 64-bit LE Supported States mask (only
// bits 0..41 are meaningful) to the list of concurrent-role combinations
// it permits, in bit order.
func DecodeSupportedStates(mask uint64) []StateCombination {
	var out []StateCombination
	for bit := 0; bit < len(leStatesTable); bit++ {
		if mask&(1<<uint(bit)) == 0 {
			continue
		}
		roles := leStatesTable[bit]
		if len(roles) == 0 {
			continue
		}
		out = append(out, StateCombination{Bit: bit, Roles: roles})
	}
	return out
}
