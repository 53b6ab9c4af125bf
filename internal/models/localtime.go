package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// The types below carry wall clock values without a zone, the same way the
// client sends them. They are stored in Postgres date, time and timestamp
// (without time zone) columns.

// Date is a calendar date such as 2025-01-01.
type Date struct {
	civil.Date
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{civil.Date{Year: year, Month: month, Day: day}}
}

func (Date) GormDataType() string { return "date" }

func (Date) GormDBDataType(*gorm.DB, *schema.Field) string { return "date" }

func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		d.Date = civil.DateOf(v)
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	default:
		return fmt.Errorf("models.Date: cannot scan %T", src)
	}
}

func (d *Date) parse(s string) error {
	parsed, err := civil.ParseDate(s)
	if err != nil {
		return err
	}
	d.Date = parsed
	return nil
}

// TimeOfDay is a wall clock time such as 09:30. JSON accepts "15:04" and
// "15:04:05" and writes "15:04" unless seconds are set.
type TimeOfDay struct {
	civil.Time
}

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay{civil.Time{Hour: hour, Minute: minute}}
}

// Seconds returns the offset from midnight.
func (t TimeOfDay) Seconds() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

func (t TimeOfDay) String() string {
	if t.Second == 0 && t.Nanosecond == 0 {
		return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
	}
	return t.Time.String()
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(data []byte) error {
	return t.parse(string(data))
}

func (t *TimeOfDay) parse(s string) error {
	if parsed, err := time.Parse("15:04", s); err == nil {
		t.Time = civil.TimeOf(parsed)
		return nil
	}
	parsed, err := civil.ParseTime(s)
	if err != nil {
		return fmt.Errorf("invalid time of day %q", s)
	}
	t.Time = parsed
	return nil
}

func (TimeOfDay) GormDataType() string { return "timeofday" }

func (TimeOfDay) GormDBDataType(*gorm.DB, *schema.Field) string { return "time" }

func (t TimeOfDay) Value() (driver.Value, error) {
	return t.Time.String(), nil
}

func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = TimeOfDay{}
		return nil
	case time.Time:
		t.Time = civil.TimeOf(v)
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("models.TimeOfDay: cannot scan %T", src)
	}
}

// LocalDateTime is a date and wall clock time such as 2025-01-01T09:15.
type LocalDateTime struct {
	civil.DateTime
}

func NewLocalDateTime(year int, month time.Month, day, hour, minute int) LocalDateTime {
	return LocalDateTime{civil.DateTime{
		Date: civil.Date{Year: year, Month: month, Day: day},
		Time: civil.Time{Hour: hour, Minute: minute},
	}}
}

// ParseLocalDateTime accepts ISO local date-times with or without seconds.
func ParseLocalDateTime(s string) (LocalDateTime, error) {
	if parsed, err := time.Parse("2006-01-02T15:04", s); err == nil {
		return LocalDateTime{civil.DateTimeOf(parsed)}, nil
	}
	parsed, err := civil.ParseDateTime(s)
	if err != nil {
		return LocalDateTime{}, fmt.Errorf("invalid local date-time %q", s)
	}
	return LocalDateTime{parsed}, nil
}

func (dt *LocalDateTime) UnmarshalText(data []byte) error {
	parsed, err := ParseLocalDateTime(string(data))
	if err != nil {
		return err
	}
	*dt = parsed
	return nil
}

func (LocalDateTime) GormDataType() string { return "timestamp" }

func (LocalDateTime) GormDBDataType(*gorm.DB, *schema.Field) string { return "timestamp" }

// Value hands the driver a UTC time.Time; timestamp columns keep its wall
// clock fields as they are.
func (dt LocalDateTime) Value() (driver.Value, error) {
	return dt.In(time.UTC), nil
}

func (dt *LocalDateTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*dt = LocalDateTime{}
		return nil
	case time.Time:
		dt.DateTime = civil.DateTimeOf(v)
		return nil
	case string:
		return dt.UnmarshalText([]byte(v))
	case []byte:
		return dt.UnmarshalText(v)
	default:
		return fmt.Errorf("models.LocalDateTime: cannot scan %T", src)
	}
}
