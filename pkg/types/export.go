// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the wire, configuration, and result structures
// shared across the foursquare2maps pipeline stages.
package types

// CheckinExport mirrors one numbered check-in file from a Foursquare data
// export (checkins1.json .. checkins13.json).
type CheckinExport struct {
	Items []Checkin `json:"items"`
}

// Checkin is a single visit record. The coordinate pair lives on the
// check-in itself, not on the venue sub-record. Lat and Lng are pointers so
// a field absent from the JSON is distinguishable from an explicit zero.
type Checkin struct {
	Venue *CheckinVenue `json:"venue,omitempty"`
	Lat   *float64      `json:"lat,omitempty"`
	Lng   *float64      `json:"lng,omitempty"`
}

// CheckinVenue carries the venue fields present on a check-in record.
type CheckinVenue struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListsExport mirrors the lists.json file of a Foursquare data export.
type ListsExport struct {
	Items []List `json:"items"`
}

// List is one saved list: a name and an ordered block of items.
type List struct {
	Name      string         `json:"name"`
	ListItems ListItemsBlock `json:"listItems"`
}

// ListItemsBlock wraps the item array the export nests under "listItems".
type ListItemsBlock struct {
	Items []ListItem `json:"items"`
}

// ListItem wraps one venue reference inside a list.
type ListItem struct {
	Venue *ListVenue `json:"venue,omitempty"`
}

// ListVenue carries the venue fields present on a list item. URL is the
// venue's page on foursquare.com.
type ListVenue struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}
