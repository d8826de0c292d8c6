package models

// Preference defaults substituted whenever the stored value is absent.
const (
	DefaultTaskDateNone    = "none"
	DefaultFirstDayOfWeek  = "default"
	DefaultThemePreference = "default"
)

// UserPreferences is the API-facing shape of the free-form preference fields
// stored on the user row. Absent stored values surface as their defaults.
type UserPreferences struct {
	AutoTransferOverdueTasks    bool   `json:"autoTransferOverdueTasks"`
	DefaultTaskDate             string `json:"defaultTaskDate"`
	FirstDayOfWeek              string `json:"firstDayOfWeek"`
	EnableNotificationReminders bool   `json:"enableNotificationReminders"`
	Theme                       string `json:"theme"`
}

// PreferencesOf projects the preference fields of a user record, applying
// defaults for unset values.
func PreferencesOf(u User) UserPreferences {
	return UserPreferences{
		AutoTransferOverdueTasks:    u.AutoTransferOverdueTasks,
		DefaultTaskDate:             orDefault(u.DefaultTaskDate, DefaultTaskDateNone),
		FirstDayOfWeek:              orDefault(u.FirstDayOfWeek, DefaultFirstDayOfWeek),
		EnableNotificationReminders: u.EnableNotificationReminders,
		Theme:                       orDefault(u.Theme, DefaultThemePreference),
	}
}

// UpdatePreferencesRequest is the payload of PUT /api/v1/preferences.
// Omitted string fields fall back to their defaults, matching the mobile
// client contract.
type UpdatePreferencesRequest struct {
	AutoTransferOverdueTasks    bool    `json:"autoTransferOverdueTasks"`
	DefaultTaskDate             *string `json:"defaultTaskDate"`
	FirstDayOfWeek              *string `json:"firstDayOfWeek"`
	EnableNotificationReminders bool    `json:"enableNotificationReminders"`
	Theme                       *string `json:"theme"`
}

func orDefault(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}
