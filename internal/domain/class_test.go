package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassInfo_Label(t *testing.T) {
	tests := []struct {
		name     string
		info     *ClassInfo
		expected string
	}{
		{
			name:     "full info with grade",
			info:     &ClassInfo{ScheduleID: 10, Teacher: "Smith", ClassName: "Math", Grade: "9"},
			expected: "Math - Smith (Grade 9)",
		},
		{
			name:     "zero grade omits suffix",
			info:     &ClassInfo{Teacher: "Smith", ClassName: "Math", Grade: "0"},
			expected: "Math - Smith",
		},
		{
			name:     "missing grade omits suffix",
			info:     &ClassInfo{Teacher: "Smith", ClassName: "Math"},
			expected: "Math - Smith",
		},
		{
			name:     "missing teacher and class name",
			info:     &ClassInfo{Grade: "11"},
			expected: "Class - Unknown (Grade 11)",
		},
		{
			name:     "nil info uses placeholders",
			info:     nil,
			expected: "Class - Unknown",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.info.Label())
		})
	}
}

func TestClassInfo_GradeLabel(t *testing.T) {
	assert.Equal(t, "Grade 9", (&ClassInfo{Grade: "9"}).GradeLabel())
	assert.Equal(t, "", (&ClassInfo{Grade: "0"}).GradeLabel())
	assert.Equal(t, "", (&ClassInfo{}).GradeLabel())
}

func TestFloorCatalog_Label(t *testing.T) {
	catalog := NewFloorCatalog([]FloorConfig{
		{Floor: 0, Label: "Ground", Image: "floor-0.png", Width: 1035, Height: 772},
		{Floor: 4, Image: "floor-3.png", Width: 544, Height: 755},
	})

	assert.Equal(t, "Ground", catalog.Label(0))
	assert.Equal(t, "Floor 4", catalog.Label(4))
	assert.Equal(t, "Floor 7", catalog.Label(7))
	assert.Equal(t, "floor-3.png", catalog.Image(4))
	assert.Equal(t, "", catalog.Image(7))
	assert.Equal(t, []int{0, 4}, catalog.Floors())
}
