package team

import (
	"errors"
	"fmt"
)

// ErrMemberNotFound is returned when a name is not part of the directory.
var ErrMemberNotFound = errors.New("member not found")

// Member is a single person on the project team.
type Member struct {
	Name string `yaml:"name" toml:"name"`
	Role string `yaml:"role" toml:"role"`
}

// roster is the on-disk structure of a team roster file.
type roster struct {
	Members []Member `yaml:"members"`
}

// DefaultMembers returns the built-in roster used when no roster is configured.
func DefaultMembers() []Member {
	return []Member{
		{Name: "Faisal", Role: "Project Manager"},
		{Name: "Hamza", Role: "Developer"},
		{Name: "Huzaifa", Role: "Designer"},
		{Name: "Umer", Role: "Tester"},
	}
}

// Directory maps member names to roles. It is read-only once built.
type Directory struct {
	members []Member
	roles   map[string]string
}

// NewDirectory builds a Directory from members, preserving their order.
func NewDirectory(members []Member) (*Directory, error) {
	d := &Directory{
		members: make([]Member, 0, len(members)),
		roles:   make(map[string]string, len(members)),
	}
	for _, m := range members {
		if m.Name == "" {
			return nil, fmt.Errorf("team member with role %q has no name", m.Role)
		}
		if _, dup := d.roles[m.Name]; dup {
			return nil, fmt.Errorf("duplicate team member %q", m.Name)
		}
		d.roles[m.Name] = m.Role
		d.members = append(d.members, m)
	}
	return d, nil
}

// ListMembers returns member names in roster order.
func (d *Directory) ListMembers() []string {
	names := make([]string, len(d.members))
	for i, m := range d.members {
		names[i] = m.Name
	}
	return names
}

// Members returns a copy of the roster.
func (d *Directory) Members() []Member {
	out := make([]Member, len(d.members))
	copy(out, d.members)
	return out
}

// RoleOf returns the role of the named member.
func (d *Directory) RoleOf(name string) (string, error) {
	role, ok := d.roles[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMemberNotFound, name)
	}
	return role, nil
}
