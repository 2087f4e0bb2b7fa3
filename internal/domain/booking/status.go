package booking

type Status string

// Appointments are created pending and never transition afterwards; there is
// no cancel or complete flow.
const StatusPending Status = "pending"

func InitialStatus() Status {
	return StatusPending
}
