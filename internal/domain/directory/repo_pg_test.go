package directory

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/careconnect/careconnect/internal/platform/db"
)

// fakeRow feeds canned column values to a scan function.
type fakeRow struct {
	vals []interface{}
	err  error
}

func (r *fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.vals) {
		return pgx.ErrNoRows
	}
	for i, v := range r.vals {
		if v == nil {
			continue
		}
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(v))
	}
	return nil
}

func strPtr(s string) *string { return &s }

func hospitalRowVals(id int64, name string) []interface{} {
	return []interface{}{
		id, name, "Nairobi", "Nairobi County", (*string)(nil),
		[]string{"Cardiology", "Pediatrics"}, "4.5",
		strPtr("A teaching hospital"), (*string)(nil), (*string)(nil),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func doctorRowVals(id, userID, hospitalID int64) []interface{} {
	return []interface{}{
		id, userID, hospitalID, "Cardiology", "9 years", "4.8",
		strPtr("KE-12345"), (*string)(nil),
		json.RawMessage(`["09:00","10:00"]`),
		time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
	}
}

func userRowVals(id int64, name string) []interface{} {
	return []interface{}{
		id, "1234567890", "doc@example.com", name, (*string)(nil), (*string)(nil),
		(*string)(nil), (*string)(nil), "doctor", (*string)(nil),
		time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestScanHospital(t *testing.T) {
	row := &fakeRow{vals: hospitalRowVals(3, "Kenyatta National Hospital")}

	h, err := scanHospital(row)
	if err != nil {
		t.Fatalf("scanHospital() error: %v", err)
	}
	if h.ID != 3 {
		t.Errorf("expected id 3, got %d", h.ID)
	}
	if h.Name != "Kenyatta National Hospital" {
		t.Errorf("unexpected name: %s", h.Name)
	}
	if len(h.Specialties) != 2 || h.Specialties[0] != "Cardiology" {
		t.Errorf("unexpected specialties: %v", h.Specialties)
	}
	if h.Image != nil {
		t.Error("expected nil image")
	}
}

func TestScanHospital_NoRows(t *testing.T) {
	row := &fakeRow{err: pgx.ErrNoRows}

	_, err := scanHospital(row)
	if !db.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestScanDoctorWithUser(t *testing.T) {
	vals := append(doctorRowVals(7, 12, 3), userRowVals(12, "Dr. Otieno")...)
	row := &fakeRow{vals: vals}

	dd, err := scanDoctorWithUser(row)
	if err != nil {
		t.Fatalf("scanDoctorWithUser() error: %v", err)
	}
	if dd.ID != 7 || dd.UserID != 12 || dd.HospitalID != 3 {
		t.Errorf("unexpected doctor row: %+v", dd.Doctor)
	}
	if dd.User == nil || dd.User.Name != "Dr. Otieno" {
		t.Fatalf("expected joined user, got %+v", dd.User)
	}
	if dd.User.Password != "" {
		t.Error("joined user must not carry a password hash")
	}
	if dd.Hospital != nil {
		t.Error("expected no hospital on a user-only join")
	}
}

func TestScanDoctorDetail(t *testing.T) {
	vals := append(doctorRowVals(7, 12, 3), userRowVals(12, "Dr. Otieno")...)
	vals = append(vals, hospitalRowVals(3, "Kenyatta National Hospital")...)
	row := &fakeRow{vals: vals}

	dd, err := scanDoctorDetail(row)
	if err != nil {
		t.Fatalf("scanDoctorDetail() error: %v", err)
	}
	if dd.User == nil || dd.User.ID != 12 {
		t.Fatalf("expected joined user, got %+v", dd.User)
	}
	if dd.Hospital == nil || dd.Hospital.Name != "Kenyatta National Hospital" {
		t.Fatalf("expected joined hospital, got %+v", dd.Hospital)
	}
	if dd.Hospital.ID != dd.HospitalID {
		t.Error("joined hospital id does not match the doctor row")
	}
	if string(dd.AvailableSlots) != `["09:00","10:00"]` {
		t.Errorf("unexpected available slots: %s", dd.AvailableSlots)
	}
}

func TestDoctorDetail_JSONShape(t *testing.T) {
	vals := append(doctorRowVals(7, 12, 3), userRowVals(12, "Dr. Otieno")...)
	dd, err := scanDoctorWithUser(&fakeRow{vals: vals})
	if err != nil {
		t.Fatalf("scanDoctorWithUser() error: %v", err)
	}

	out, err := json.Marshal(dd)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if _, ok := m["user"]; !ok {
		t.Error("expected nested user object")
	}
	if _, ok := m["hospital"]; ok {
		t.Error("nil hospital must be omitted")
	}
	if u := m["user"].(map[string]interface{}); u["password"] != nil {
		t.Error("password must never be serialized")
	}
}

func TestDoctorSearchRow_CarriesHospital(t *testing.T) {
	// Search pages join users and hospitals; a hit must serialize with
	// the employing hospital so clients can render where the doctor
	// practices.
	vals := append(doctorRowVals(7, 12, 3), userRowVals(12, "Dr. Otieno")...)
	vals = append(vals, hospitalRowVals(3, "Kenyatta National Hospital")...)

	dd, err := scanDoctorDetail(&fakeRow{vals: vals})
	if err != nil {
		t.Fatalf("scanDoctorDetail() error: %v", err)
	}

	out, err := json.Marshal(dd)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	h, ok := m["hospital"].(map[string]interface{})
	if !ok {
		t.Fatal("expected nested hospital object in search result")
	}
	if h["name"] != "Kenyatta National Hospital" {
		t.Errorf("unexpected hospital name: %v", h["name"])
	}
	if _, ok := m["user"]; !ok {
		t.Error("expected nested user object in search result")
	}
}
