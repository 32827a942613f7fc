package models

import (
	"time"
)

// Attribute names managed by the service. pk and createdAt are written once
// at creation time; updatedAt is refreshed on every successful update.
const (
	FieldPK        = "pk"
	FieldName      = "name"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

// TimeFormat is the ISO-8601 layout used for item timestamps.
const TimeFormat = "2006-01-02T15:04:05.000Z"

// Item is a single record in the backing collection. Beyond the managed
// attributes it carries arbitrary caller-supplied fields, so it is a plain
// string-keyed map rather than a fixed struct.
type Item map[string]interface{}

// NewItem builds a new item from caller-supplied fields. The managed
// attributes are stamped last, so caller values for pk, createdAt, and
// updatedAt never survive.
func NewItem(pk string, fields map[string]interface{}) Item {
	item := make(Item, len(fields)+3)
	for k, v := range fields {
		item[k] = v
	}

	now := Timestamp(time.Now())
	item[FieldPK] = pk
	item[FieldCreatedAt] = now
	item[FieldUpdatedAt] = now

	return item
}

// Timestamp formats a time in the item timestamp layout (UTC, millisecond
// precision).
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}

// PK returns the item's primary key.
func (i Item) PK() string {
	return i.stringField(FieldPK)
}

// Name returns the item's name.
func (i Item) Name() string {
	return i.stringField(FieldName)
}

// CreatedAt returns the item's creation timestamp.
func (i Item) CreatedAt() string {
	return i.stringField(FieldCreatedAt)
}

// UpdatedAt returns the item's last-update timestamp.
func (i Item) UpdatedAt() string {
	return i.stringField(FieldUpdatedAt)
}

// Clone returns a shallow copy of the item.
func (i Item) Clone() Item {
	clone := make(Item, len(i))
	for k, v := range i {
		clone[k] = v
	}
	return clone
}

func (i Item) stringField(key string) string {
	if v, ok := i[key].(string); ok {
		return v
	}
	return ""
}

// UpdatableFields returns the subset of fields an update is allowed to
// modify. Attempts to set pk or createdAt are silently dropped rather than
// rejected; this matches the service's update contract.
func UpdatableFields(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if k == FieldPK || k == FieldCreatedAt {
			continue
		}
		out[k] = v
	}
	return out
}
