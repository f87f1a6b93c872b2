package redisutils

import (
	"strconv"
	"strings"
)

// FormatID() formats a userID into a string
func FormatID(ID int) string {
	return strconv.Itoa(ID)
}

// ParseID() parses a userID from the specified string
func ParseID(strVal string) (int, error) {
	return strconv.Atoi(strVal)
}

// FormatIDs() formats a slice of IDs into a slice of strings, ready for SADD.
func FormatIDs(IDs []int) []string {
	strIDs := make([]string, len(IDs))
	for i, ID := range IDs {
		strIDs[i] = FormatID(ID)
	}
	return strIDs
}

// ParseIDs() parses a slice of IDs from the specified strings.
func ParseIDs(strIDs []string) ([]int, error) {
	IDs := make([]int, len(strIDs))
	for i, strID := range strIDs {
		ID, err := ParseID(strID)
		if err != nil {
			return nil, err
		}
		IDs[i] = ID
	}
	return IDs, nil
}

// FormatList() formats an ordered list of IDs into a string like "1,2,3".
func FormatList(IDs []int) string {
	return strings.Join(FormatIDs(IDs), ",")
}

// ParseList() parses a string like "1,2,3" into an ordered list of IDs.
// The empty string is parsed into an empty list.
func ParseList(strList string) ([]int, error) {
	if len(strList) == 0 {
		return []int{}, nil
	}
	return ParseIDs(strings.Split(strList, ","))
}

// ParseInt64() parses an int from the specified string
func ParseInt64(strVal string) (int64, error) {
	return strconv.ParseInt(strVal, 10, 64)
}
