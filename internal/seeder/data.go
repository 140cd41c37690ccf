package seeder

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/course-api/models"
)

// Data is the content of the seed file.
type Data struct {
	Users   []models.CreateAccountRequest `json:"users"`
	Courses []SeedCourse                  `json:"courses"`
}

// SeedCourse is a course together with the 1-based position of its owner
// in [Data.Users].
type SeedCourse struct {
	UserID int `json:"userId"`
	models.CourseRequest
}

// LoadData reads and checks a seed file.
func LoadData(path string) (Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("reading seed file: %w", err)
	}

	var data Data
	if err = json.Unmarshal(raw, &data); err != nil {
		return Data{}, fmt.Errorf("%w: %w", ErrInvalidSeedFile, err)
	}

	if err = data.check(); err != nil {
		return Data{}, err
	}
	return data, nil
}

func (d Data) check() error {
	for i, u := range d.Users {
		if u.EmailAddress == nil || u.Password == nil {
			return fmt.Errorf("%w: user %d has no credentials", ErrInvalidSeedFile, i+1)
		}
	}
	for i, c := range d.Courses {
		if c.UserID < 1 || c.UserID > len(d.Users) {
			return fmt.Errorf("%w: course %d references unknown user %d", ErrInvalidSeedFile, i+1, c.UserID)
		}
	}
	return nil
}

// owner returns the account that creates course c.
func (d Data) owner(c SeedCourse) models.CreateAccountRequest {
	return d.Users[c.UserID-1]
}
