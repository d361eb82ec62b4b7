package uorb

// Instance priorities, from lowest to highest. When several publishers
// advertise the same topic, subscribers prefer the highest priority instance.
const (
	PrioMin      int32 = 1
	PrioVeryLow  int32 = 25
	PrioLow      int32 = 50
	PrioDefault  int32 = 75
	PrioHigh     int32 = 100
	PrioVeryHigh int32 = 125
	PrioMax      int32 = 255
)
