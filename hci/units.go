package hci

import "math"

// Controller unit scaling factors, expressed as milliseconds per unit.
const (
	advIntervalUnitMs  = 0.625
	connIntervalUnitMs = 1.25
	supervisionUnitMs  = 10.0
	periodicSyncUnitMs = 1280.0 // 1.28s
)

// msToUnits converts a millisecond duration to controller units using the
// given unit size, rounding half-away-from-zero.
func msToUnits(ms float64, unitMs float64) uint32 {
	return uint32(math.Round(ms / unitMs))
}

func unitsToMs(units uint32, unitMs float64) float64 {
	return float64(units) * unitMs
}

// MsToAdvUnits converts milliseconds to 0.625ms advertising/scan
// interval-or-window units.
func MsToAdvUnits(ms float64) uint16 {
	return uint16(msToUnits(ms, advIntervalUnitMs))
}

// AdvUnitsToMs converts 0.625ms units back to milliseconds.
func AdvUnitsToMs(units uint16) float64 {
	return unitsToMs(uint32(units), advIntervalUnitMs)
}

// MsToConnUnits converts milliseconds to 1.25ms connection interval units.
func MsToConnUnits(ms float64) uint16 {
	return uint16(msToUnits(ms, connIntervalUnitMs))
}

// ConnUnitsToMs converts 1.25ms connection interval units back to
// milliseconds.
func ConnUnitsToMs(units uint16) float64 {
	return unitsToMs(uint32(units), connIntervalUnitMs)
}

// MsToSupervisionUnits converts milliseconds to 10ms supervision timeout
// units.
func MsToSupervisionUnits(ms float64) uint16 {
	return uint16(msToUnits(ms, supervisionUnitMs))
}

// SupervisionUnitsToMs converts 10ms supervision timeout units back to
// milliseconds.
func SupervisionUnitsToMs(units uint16) float64 {
	return unitsToMs(uint32(units), supervisionUnitMs)
}

// MsToPeriodicSyncUnits converts milliseconds to 1.28s periodic sync
// units.
func MsToPeriodicSyncUnits(ms float64) uint16 {
	return uint16(msToUnits(ms, periodicSyncUnitMs))
}

// PeriodicSyncUnitsToMs converts 1.28s periodic sync units back to
// milliseconds.
func PeriodicSyncUnitsToMs(units uint16) float64 {
	return unitsToMs(uint32(units), periodicSyncUnitMs)
}

// MsToSlots10 converts milliseconds to 10ms slot units, as used by the
// extended scan enable command's duration field.
func MsToSlots10(ms float64) uint16 {
	return uint16(msToUnits(ms, 10.0))
}

// Slots10ToMs converts 10ms slot units back to milliseconds.
func Slots10ToMs(units uint16) float64 {
	return unitsToMs(uint32(units), 10.0)
}
