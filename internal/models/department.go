package models

// Department groups teachers, students and courses under one academic unit.
type Department struct {
	ID          string
	Name        string
	HeadOfDept  string
	Description string
}

// MarshalLine encodes the department for its persisted file.
func (d Department) MarshalLine() string {
	return joinLine(d.ID, d.Name, d.HeadOfDept, d.Description)
}

// UnmarshalDepartmentLine decodes one persisted line.
func UnmarshalDepartmentLine(line string) (Department, bool) {
	fields, ok := splitLine(line, 4)
	if !ok {
		return Department{}, false
	}
	return Department{
		ID:          fields[0],
		Name:        fields[1],
		HeadOfDept:  fields[2],
		Description: fields[3],
	}, true
}
