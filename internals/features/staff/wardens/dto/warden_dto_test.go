package dto

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/lib/pq"

	helper "hostel_admin_backend/internals/helpers"
)

func TestHostelIDsAcceptsStringOrList(t *testing.T) {
	cases := map[string]HostelIDs{
		`"BH-1"`:                  {"BH-1"},
		`["BH-1"," BH-2 ","BH-1"]`: {"BH-1", "BH-2"},
		`[]`:                      {},
		`" "`:                     {},
	}
	for in, want := range cases {
		var got HostelIDs
		if err := json.Unmarshal([]byte(in), &got); err != nil {
			t.Fatalf("%s: %v", in, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%s: got %v, want %v", in, got, want)
		}
	}
	var bad HostelIDs
	if err := json.Unmarshal([]byte(`42`), &bad); err == nil {
		t.Error("number accepted")
	}
}

func TestCreateWardenRequest(t *testing.T) {
	body := `{"wardenType":"senior_warden","name":" Anil ","emp_id":"W01","hostel_id":"BH-1","phone_no":"9876543210","email":"anil@hostel.edu"}`
	var req CreateWardenRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatal(err)
	}
	req.Normalize()
	if err := helper.Validate.Struct(req); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
	m := req.ToModel("ADM001")
	if m.Role != "senior_warden" || !reflect.DeepEqual(m.HostelID, pq.StringArray{"BH-1"}) || m.Name != "Anil" || m.CreatedBy != "ADM001" || !m.Active {
		t.Fatalf("model = %+v", m)
	}

	req.WardenType = "matron"
	if err := helper.Validate.Struct(req); err == nil {
		t.Fatal("unknown warden type accepted")
	}
	req.WardenType = "warden"
	req.HostelID = HostelIDs{}
	if err := helper.Validate.Struct(req); err == nil {
		t.Fatal("empty hostel list accepted")
	}
}

func TestUpdateWardenChanges(t *testing.T) {
	ids := HostelIDs{"GH-2"}
	off := false
	req := UpdateWardenRequest{HostelID: &ids}
	req.Active = &off
	ch := req.Changes()
	if len(ch) != 2 || ch["active"] != false || !reflect.DeepEqual(ch["hostel_id"], pq.StringArray{"GH-2"}) {
		t.Fatalf("changes = %v", ch)
	}
}
