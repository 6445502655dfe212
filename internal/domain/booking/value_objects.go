package booking

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// ClockTime is a wall-clock time of day, kept as minutes after midnight.
type ClockTime struct {
	minute int
}

// ParseClockTime accepts the 12-hour display form ("10:00 AM", "1:30pm").
// A plain 24-hour "HH:MM" is accepted as well.
func ParseClockTime(s string) (ClockTime, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return ClockTime{}, ErrInvalidClockTime
	}

	modifier := ""
	switch {
	case strings.HasSuffix(s, "AM"):
		modifier = "AM"
	case strings.HasSuffix(s, "PM"):
		modifier = "PM"
	}
	clock := strings.TrimSpace(strings.TrimSuffix(s, modifier))

	hh, mm, ok := strings.Cut(clock, ":")
	if !ok || len(hh) < 1 || len(hh) > 2 || len(mm) != 2 || !allDigits(hh) || !allDigits(mm) {
		return ClockTime{}, ErrInvalidClockTime
	}
	hours, _ := strconv.Atoi(hh)
	minutes, _ := strconv.Atoi(mm)
	if minutes > 59 {
		return ClockTime{}, ErrInvalidClockTime
	}

	if modifier == "" {
		if hours < 0 || hours > 23 {
			return ClockTime{}, ErrInvalidClockTime
		}
		return ClockTime{minute: hours*60 + minutes}, nil
	}

	if hours < 1 || hours > 12 {
		return ClockTime{}, ErrInvalidClockTime
	}
	// 12 AM is midnight, 12 PM is noon
	if hours == 12 {
		hours = 0
	}
	if modifier == "PM" {
		hours += 12
	}
	return ClockTime{minute: hours*60 + minutes}, nil
}

// allDigits rejects the signs strconv.Atoi would accept.
func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func ClockTimeFromMinute(minute int) (ClockTime, error) {
	if minute < 0 || minute >= minutesPerDay {
		return ClockTime{}, ErrInvalidClockTime
	}
	return ClockTime{minute: minute}, nil
}

func (c ClockTime) Minute() int {
	return c.minute
}

// String12 renders the display form stored on bookings, e.g. "01:00 PM".
func (c ClockTime) String12() string {
	h, m := c.minute/60, c.minute%60
	modifier := "AM"
	if h >= 12 {
		modifier = "PM"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%02d:%02d %s", h, m, modifier)
}

func (c ClockTime) String24() string {
	return fmt.Sprintf("%02d:%02d", c.minute/60, c.minute%60)
}

// TimeRange is a same-day interval; ranges crossing midnight are not representable.
type TimeRange struct {
	start ClockTime
	end   ClockTime
}

func NewTimeRange(start, end ClockTime) (TimeRange, error) {
	if end.minute <= start.minute {
		return TimeRange{}, ErrInvalidTimeRange
	}
	return TimeRange{start: start, end: end}, nil
}

func ParseTimeRange(start, end string) (TimeRange, error) {
	s, err := ParseClockTime(start)
	if err != nil {
		return TimeRange{}, err
	}
	e, err := ParseClockTime(end)
	if err != nil {
		return TimeRange{}, err
	}
	return NewTimeRange(s, e)
}

func (r TimeRange) Start() ClockTime { return r.start }
func (r TimeRange) End() ClockTime   { return r.end }

func (r TimeRange) Minutes() int {
	return r.end.minute - r.start.minute
}

func (r TimeRange) Hours() float64 {
	return float64(r.Minutes()) / 60.0
}

const dateLayout = "2006-01-02"

// Date is a calendar day without a zone.
type Date struct {
	y int
	m time.Month
	d int
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return DateOf(t), nil
}

// DateOf takes the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{y: y, m: m, d: d}
}

func (d Date) IsZero() bool {
	return d.y == 0 && d.m == 0 && d.d == 0
}

func (d Date) String() string {
	return d.Time().Format(dateLayout)
}

// Time is midnight UTC, the form the date column is written with.
func (d Date) Time() time.Time {
	return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC)
}

// At places a wall-clock time on this day in loc.
func (d Date) At(c ClockTime, loc *time.Location) time.Time {
	return time.Date(d.y, d.m, d.d, c.minute/60, c.minute%60, 0, 0, loc)
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d Date) Before(o Date) bool {
	return d.Time().Before(o.Time())
}

func (d Date) After(o Date) bool {
	return d.Time().After(o.Time())
}

var phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

const maxContactField = 120

// Contact is what the provider sees at the gate.
type Contact struct {
	name    string
	vehicle string
	phone   string
}

func NewContact(name, vehicle, phone string) (Contact, error) {
	name = strings.TrimSpace(name)
	vehicle = strings.ToUpper(strings.TrimSpace(vehicle))
	phone = strings.ReplaceAll(strings.TrimSpace(phone), " ", "")

	if name == "" || vehicle == "" || len(name) > maxContactField || len(vehicle) > maxContactField {
		return Contact{}, ErrInvalidContact
	}
	if phone != "" && !phoneRegex.MatchString(phone) {
		return Contact{}, ErrInvalidContact
	}
	return Contact{name: name, vehicle: vehicle, phone: phone}, nil
}

func (c Contact) Name() string    { return c.name }
func (c Contact) Vehicle() string { return c.vehicle }
func (c Contact) Phone() string   { return c.phone }

// CheckInCode is the 6-digit code the user shows the provider on arrival.
type CheckInCode string

var codeRegex = regexp.MustCompile(`^[1-9][0-9]{5}$`)

func NewCheckInCode(s string) (CheckInCode, error) {
	s = strings.TrimSpace(s)
	if !codeRegex.MatchString(s) {
		return "", ErrInvalidCheckInCode
	}
	return CheckInCode(s), nil
}

func (c CheckInCode) String() string {
	return string(c)
}

type CodeGenerator interface {
	Generate() (CheckInCode, error)
}

type RandomCodeGenerator struct{}

func NewRandomCodeGenerator() *RandomCodeGenerator {
	return &RandomCodeGenerator{}
}

// Generate draws uniformly from 100000–999999.
func (RandomCodeGenerator) Generate() (CheckInCode, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generate check-in code: %w", err)
	}
	return CheckInCode(strconv.FormatInt(n.Int64()+100000, 10)), nil
}
