package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/huh"

	"github.com/tvxk/coralbay/booking"
	"github.com/tvxk/coralbay/catalog"
	"github.com/tvxk/coralbay/search"
)

type BookCmd struct {
	RoomCode string `help:"Room code from the rooms or search listing." arg:""`
	CheckIn  string `help:"Check-in date (YYYY-MM-DD)." required:""`
	CheckOut string `help:"Check-out date (YYYY-MM-DD)." required:""`

	FirstName string `help:"Guest first name."`
	LastName  string `help:"Guest last name."`
	Email     string `help:"Contact email."`
	Phone     string `help:"Contact phone number (digits only)."`
	Adults    int    `help:"Number of adults." default:"1"`
	Children  int    `help:"Number of children." default:"0"`

	Breakfast bool `help:"Add daily breakfast."`
	Shuttle   bool `help:"Add the airport shuttle."`

	Card       string `help:"Card number (16 digits)."`
	CVV        string `help:"Card CVV (3 digits)."`
	Expiry     string `help:"Card expiry (MM/YY)."`
	Cardholder string `help:"Name on the card."`

	Yes bool `help:"Confirm without the summary prompt." short:"y"`
}

func (cmd *BookCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, report := globals.withTelemetry(ctx, "book")
	defer report()

	stay, err := search.StayBetween(cmd.CheckIn, cmd.CheckOut)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	store := globals.openStore()
	cat := globals.openCatalog()

	room, found := cat.FindByCode(cmd.RoomCode)
	if !found {
		printError(ctx.Stderr, fmt.Sprintf("Unknown room code %q, see the rooms command", cmd.RoomCode))
		return NewCommandError(1)
	}

	if cmd.Breakfast && !room.BreakfastAvailable {
		printError(ctx.Stderr, fmt.Sprintf("%s does not offer breakfast", room.Name))
		return NewCommandError(1)
	}
	if cmd.Shuttle && !room.ShuttleAvailable {
		printError(ctx.Stderr, fmt.Sprintf("%s does not offer the airport shuttle", room.Name))
		return NewCommandError(1)
	}

	if !roomAvailable(runCtx, store, cat, room.Code, stay) {
		printError(ctx.Stderr, fmt.Sprintf("%s is not available from %s to %s", room.Name, stay.CheckIn, stay.CheckOut))
		return NewCommandError(1)
	}

	if isTerminal() {
		if err := cmd.promptGuest(); err != nil {
			return err
		}
	}
	if err := cmd.validateGuest(); err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	quote := globals.rates().ComputeFloat(room.Price, stay.Nights, cmd.Breakfast, cmd.Shuttle)

	printInfof(ctx.Stdout, "%s, %s to %s (%d nights)", room.Name, stay.CheckIn, stay.CheckOut, stay.Nights)
	_, _ = fmt.Fprintln(ctx.Stdout)
	renderQuote(ctx.Stdout, quote)
	_, _ = fmt.Fprintln(ctx.Stdout)

	if isTerminal() {
		if err := cmd.promptPayment(); err != nil {
			return err
		}
	}
	if err := cmd.validatePayment(); err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	if !cmd.Yes {
		if !isTerminal() {
			printInfof(ctx.Stdout, "Re-run with --yes to confirm the booking")
			return nil
		}

		confirmed, err := promptYesNo(fmt.Sprintf("Charge %s and confirm?", dollars(quote.Total.InexactFloat64())))
		if err != nil {
			return err
		}
		if !confirmed {
			printInfof(ctx.Stdout, "Booking not placed")
			return nil
		}
	}

	draft := booking.Draft{
		FirstName:    cmd.FirstName,
		LastName:     cmd.LastName,
		Email:        cmd.Email,
		Phone:        cmd.Phone,
		Adults:       cmd.Adults,
		Children:     cmd.Children,
		RoomType:     room.ShortType,
		RoomName:     room.Name,
		RoomNumber:   room.RoomNumber,
		CheckIn:      stay.CheckIn,
		CheckOut:     stay.CheckOut,
		Nights:       stay.Nights,
		Breakfast:    cmd.Breakfast,
		Shuttle:      cmd.Shuttle,
		TotalPrice:   quote.Total.InexactFloat64(),
		PaymentLast4: cardLast4(cmd.Card),
	}

	code, err := store.Create(runCtx, draft)
	if err != nil {
		printError(ctx.Stderr, fmt.Sprintf("Booking failed: %v", err))
		return NewCommandError(1)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Booking confirmed, your code is %s", codeStyle.Render(code)))
	printInfof(ctx.Stdout, "Look it up any time: coralbay show %s %s", cmd.LastName, code)

	return nil
}

// promptGuest collects the guest fields that were not passed as flags.
func (cmd *BookCmd) promptGuest() error {
	var fields []huh.Field

	if cmd.FirstName == "" {
		fields = append(fields, huh.NewInput().
			Title("First name").
			Validate(func(s string) error { return validateGuestName("first name", s) }).
			Value(&cmd.FirstName))
	}
	if cmd.LastName == "" {
		fields = append(fields, huh.NewInput().
			Title("Last name").
			Validate(func(s string) error { return validateGuestName("last name", s) }).
			Value(&cmd.LastName))
	}
	if cmd.Email == "" {
		fields = append(fields, huh.NewInput().
			Title("Email").
			Validate(validateEmail).
			Value(&cmd.Email))
	}
	if cmd.Phone == "" {
		fields = append(fields, huh.NewInput().
			Title("Phone").
			Validate(validatePhone).
			Value(&cmd.Phone))
	}

	return runForm(fields)
}

// promptPayment collects the card fields that were not passed as flags. The
// card number and CVV are masked while typed.
func (cmd *BookCmd) promptPayment() error {
	var fields []huh.Field

	if cmd.Card == "" {
		fields = append(fields, huh.NewInput().
			Title("Card number").
			EchoMode(huh.EchoModePassword).
			Validate(validateCardNumber).
			Value(&cmd.Card))
	}
	if cmd.CVV == "" {
		fields = append(fields, huh.NewInput().
			Title("CVV").
			EchoMode(huh.EchoModePassword).
			Validate(validateCVV).
			Value(&cmd.CVV))
	}
	if cmd.Expiry == "" {
		fields = append(fields, huh.NewInput().
			Title("Expiry (MM/YY)").
			Validate(func(s string) error { return validateExpiry(s, time.Now()) }).
			Value(&cmd.Expiry))
	}
	if cmd.Cardholder == "" {
		fields = append(fields, huh.NewInput().
			Title("Cardholder name").
			Validate(validateCardholder).
			Value(&cmd.Cardholder))
	}

	return runForm(fields)
}

func runForm(fields []huh.Field) error {
	if len(fields) == 0 {
		return nil
	}

	err := huh.NewForm(huh.NewGroup(fields...)).Run()
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return nil
}

func (cmd *BookCmd) validateGuest() error {
	if err := validateGuestName("first name", cmd.FirstName); err != nil {
		return err
	}
	if err := validateGuestName("last name", cmd.LastName); err != nil {
		return err
	}
	if err := validateEmail(cmd.Email); err != nil {
		return err
	}
	if err := validatePhone(cmd.Phone); err != nil {
		return err
	}
	return validateParty(cmd.Adults, cmd.Children)
}

func (cmd *BookCmd) validatePayment() error {
	if err := validateCardNumber(cmd.Card); err != nil {
		return err
	}
	if err := validateCVV(cmd.CVV); err != nil {
		return err
	}
	if err := validateExpiry(cmd.Expiry, time.Now()); err != nil {
		return err
	}
	return validateCardholder(cmd.Cardholder)
}

// roomAvailable runs an unfiltered availability search and checks the chosen
// room is among the results, so booking applies the exact same occupancy
// rules the search command shows.
func roomAvailable(ctx context.Context, store *booking.Store, cat *catalog.Catalog, code string, stay search.Stay) bool {
	engine := search.NewEngine(store, cat)
	for _, room := range engine.Search(ctx, search.Criteria{}, stay) {
		if strings.EqualFold(room.Code, code) {
			return true
		}
	}
	return false
}
