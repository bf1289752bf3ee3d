package model

import "time"

type Role string

const (
	RoleRefugee   Role = "refugee"
	RoleVolunteer Role = "volunteer"
	RoleAdmin     Role = "admin"
)

func (r Role) IsValid() bool {
	return r == RoleRefugee || r == RoleVolunteer || r == RoleAdmin
}

// User represents a registered account. Refugees carry Address/Needs,
// volunteers carry Skills/Availability.
type User struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Role             Role   `json:"role"`
	Contact          string `json:"contact"`
	Age              int    `json:"age,omitempty"`
	Address          string `json:"address,omitempty"`
	Needs            string `json:"needs,omitempty"`
	Skills           string `json:"skills,omitempty"`
	Availability     string `json:"availability,omitempty"`
	Password         string `json:"password,omitempty"`
	RegistrationDate string `json:"registrationDate,omitempty"`
}

// WithoutPassword returns a copy safe to persist as the session record.
func (u User) WithoutPassword() User {
	u.Password = ""
	return u
}

type CampType string

const (
	CampDefault        CampType = "default"
	CampVolunteerAdded CampType = "volunteer-added"
)

// Camp represents a relief shelter. Beds is the live count, OriginalBeds the
// capacity it opened with.
type Camp struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Beds         int      `json:"beds"`
	OriginalBeds int      `json:"originalBeds"`
	Resources    []string `json:"resources"`
	Contact      string   `json:"contact"`
	Ambulance    string   `json:"ambulance"` // "Yes", "No" or "Nearby"
	Type         CampType `json:"type"`
	AddedBy      string   `json:"addedBy,omitempty"`
	AddedDate    string   `json:"addedDate,omitempty"`
}

// Reservation is an account's single active camp-bed hold. CampName and
// UserName are cached labels; CampID and the owning account ID are the keys.
type Reservation struct {
	CampID       int    `json:"campId"`
	CampName     string `json:"campName"`
	SelectedDate string `json:"selectedDate"`
	UserName     string `json:"userName"`
}

// Assignment records a volunteer working at a camp on a date. VolunteerID is
// the stable key; VolunteerName is a cached label refreshed on rename.
type Assignment struct {
	ID            string `json:"id"`
	VolunteerID   string `json:"volunteerId"`
	VolunteerName string `json:"volunteer"`
	CampID        int    `json:"campId"`
	CampName      string `json:"camp"`
	Date          string `json:"date"`
}

// Activity is an audit-log entry. The log is newest-first and capped.
type Activity struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
	User        string `json:"user,omitempty"`
}

// Activity types recorded across the application.
const (
	ActivityUserRegistration    = "user_registration"
	ActivityCampSelection       = "camp_selection"
	ActivityCampCancellation    = "camp_cancellation"
	ActivityVolunteerAssignment = "volunteer_assignment"
	ActivityUserCreated         = "user_created"
	ActivityUserDeleted         = "user_deleted"
	ActivityCampCreated         = "camp_created"
	ActivityCampDeleted         = "camp_deleted"
	ActivityProfileUpdated      = "profile_updated"
)

// MaxActivities is the ring-buffer cap on the activity log.
const MaxActivities = 100

// Timestamp formats a time the way records store dates.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
