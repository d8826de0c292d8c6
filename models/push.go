package models

// PushNotification is the payload handed to the push adapter when a reminder
// becomes due. To addresses the owner; Data carries free-form attributes for
// the mobile client.
type PushNotification struct {
	To    string            `json:"to"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}
