package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Data      string `help:"Path to the bookings file." default:"bookings.json" env:"CORALBAY_DATA"`
	Rooms     string `help:"Path to the room catalog file." default:"rooms.json" env:"CORALBAY_ROOMS"`
	Telemetry bool   `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Rooms  RoomsCmd  `cmd:"" help:"List the room catalog and per-type capacity."`
	Search SearchCmd `cmd:"" help:"Search available rooms for a stay."`
	Book   BookCmd   `cmd:"" help:"Book a room: guest details, payment and confirmation."`
	Show   ShowCmd   `cmd:"" help:"Show a booking by last name and confirmation code."`
	Modify ModifyCmd `cmd:"" help:"Modify contact details, party size or add-ons of a booking."`
	Cancel CancelCmd `cmd:"" help:"Cancel a booking."`
	Web    WebCmd    `cmd:"" help:"Start the local booking viewer."`
}
