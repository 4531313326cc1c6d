package store

import (
	"fmt"

	"github.com/ytget/list-manager/internal/model"
)

// User-facing notification texts
const (
	MsgEnterValue   = "Please enter a value."
	MsgAlreadyEmpty = "List is already empty."
	MsgCleared      = "List has been cleared."
)

// MsgTooLong is shown when a value exceeds model.MaxItemLength
var MsgTooLong = fmt.Sprintf("Item must be %d characters or fewer.", model.MaxItemLength)

// MsgDuplicate formats the rejection of an existing value
func MsgDuplicate(value string) string {
	return fmt.Sprintf(`"%s" already exists.`, value)
}

// MsgAdded formats the confirmation of an added item
func MsgAdded(value string) string {
	return fmt.Sprintf(`Item "%s" added.`, value)
}

// MsgRemoved formats the confirmation of a removed item
func MsgRemoved(value string) string {
	return fmt.Sprintf(`Item "%s" removed.`, value)
}
