package domain

type Station struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Code          string   `json:"code"`
	City          string   `json:"city"`
	Address       string   `json:"address"`
	Facilities    []string `json:"facilities"`
	Platforms     int      `json:"platforms"`
	ContactNumber string   `json:"contactNumber"`
}

// StationPatch carries a partial station update. Nil fields are left as they are.
type StationPatch struct {
	Name          *string   `json:"name"`
	Code          *string   `json:"code"`
	City          *string   `json:"city"`
	Address       *string   `json:"address"`
	Facilities    *[]string `json:"facilities"`
	Platforms     *int      `json:"platforms" validate:"omitempty,gte=0"`
	ContactNumber *string   `json:"contactNumber"`
}

func (p StationPatch) Apply(s *Station) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Code != nil {
		s.Code = *p.Code
	}
	if p.City != nil {
		s.City = *p.City
	}
	if p.Address != nil {
		s.Address = *p.Address
	}
	if p.Facilities != nil {
		s.Facilities = append([]string(nil), (*p.Facilities)...)
	}
	if p.Platforms != nil {
		s.Platforms = *p.Platforms
	}
	if p.ContactNumber != nil {
		s.ContactNumber = *p.ContactNumber
	}
}

// Clone returns a copy that shares no slices with s.
func (s Station) Clone() Station {
	s.Facilities = append([]string(nil), s.Facilities...)
	return s
}
