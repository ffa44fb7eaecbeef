package lyric

import "testing"

func TestClassifyRole(t *testing.T) {
	tests := []struct {
		role   string
		want   RoleCategory
		warned bool
	}{
		{"", RolePrimary, false},
		{"   ", RolePrimary, false},
		{"左", RolePrimary, false},
		{"v1", RolePrimary, false},
		{"合", RolePrimary, false},
		{"v1000", RolePrimary, false},
		{"右", RoleDuet, false},
		{"v2", RoleDuet, false},
		{"x-duet", RoleDuet, false},
		{"x-anti", RoleDuet, false},
		{"背", RoleBackground, false},
		{"x-bg", RoleBackground, false},
		{"左 extra-tag", RolePrimary, false},
		{"背 itunes:song-part=2", RoleBackground, false},
		// case-sensitive: uppercase variants are not recognized
		{"V1", RoleOther, true},
		{"路人甲", RoleOther, true},
		{"x-lang:zh-CN", RoleOther, true},
	}

	for _, tt := range tests {
		got, warned := ClassifyRole(tt.role)
		if got != tt.want || warned != tt.warned {
			t.Errorf("ClassifyRole(%q) = (%v, %v), want (%v, %v)",
				tt.role, got, warned, tt.want, tt.warned)
		}
	}
}

func TestPropertyInference(t *testing.T) {
	tests := []struct {
		name  string
		roles []string
		want  []int
	}{
		{
			name:  "primary then duet",
			roles: []string{"左", "右"},
			want:  []int{PropertyNoBackLeft, PropertyNoBackRight},
		},
		{
			name:  "background after primary",
			roles: []string{"左", "背"},
			want:  []int{PropertyNoBackLeft, PropertyBackLeft},
		},
		{
			name:  "background after duet",
			roles: []string{"右", "背"},
			want:  []int{PropertyNoBackRight, PropertyBackRight},
		},
		{
			name:  "background run inherits first resolution",
			roles: []string{"左", "背", "背", "背"},
			want:  []int{PropertyNoBackLeft, PropertyBackLeft, PropertyBackLeft, PropertyBackLeft},
		},
		{
			name:  "background with no usable predecessor",
			roles: []string{"路人甲", "背"},
			want:  []int{PropertyUnset, PropertyBackUnset},
		},
		{
			name:  "leading background",
			roles: []string{"背"},
			want:  []int{PropertyBackUnset},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inference := newPropertyInference()
			prev := RoleOther
			for i, role := range tt.roles {
				cur, _ := ClassifyRole(role)
				got := inference.next(cur, prev)
				if got != tt.want[i] {
					t.Errorf("line %d (%q): got property %d, want %d",
						i, role, got, tt.want[i])
				}
				prev = cur
			}
		})
	}
}

// a run of consecutive background lines must all resolve to the same
// code the first pair resolved to
func TestPropertyInferenceBackgroundEquality(t *testing.T) {
	inference := newPropertyInference()

	roles := []string{"左", "背", "背"}
	var props []int
	prev := RoleOther
	for _, role := range roles {
		cur, _ := ClassifyRole(role)
		props = append(props, inference.next(cur, prev))
		prev = cur
	}

	if props[1] != props[2] {
		t.Errorf("chained background lines diverged: %d vs %d", props[1], props[2])
	}
	if props[1] != PropertyBackLeft {
		t.Errorf("background after 左: got %d, want %d", props[1], PropertyBackLeft)
	}
}

func TestRoleForProperty(t *testing.T) {
	tests := []struct {
		property int
		want     string
	}{
		{PropertyLeft, "左"},
		{PropertyNoBackLeft, "左"},
		{PropertyBackLeft, "左"},
		{PropertyRight, "右"},
		{PropertyNoBackRight, "右"},
		{PropertyBackRight, "右"},
		{PropertyBackUnset, "背"},
		{PropertyUnset, ""},
		{3, ""},
		{99, ""},
	}

	for _, tt := range tests {
		if got := RoleForProperty(tt.property); got != tt.want {
			t.Errorf("RoleForProperty(%d) = %q, want %q", tt.property, got, tt.want)
		}
	}
}
