package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/diillson/billswitch/internal/domain/entity"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		planName string
		want     entity.LineType
	}{
		{"Unlimited Plus", entity.LineVoice},
		{"", entity.LineVoice},
		{"Apple Watch Unlimited", entity.LineWatch},
		{"WEARABLE add-on", entity.LineWatch},
		{"DIGITS Companion", entity.LineWatch},
		{"iPad Tablet Plan", entity.LineTablet},
		{"Mobile Internet 10GB", entity.LineTablet},
		{"Wearable Tablet Plan", entity.LineWatch},
		{"Tablet with Watch sharing", entity.LineWatch},
	}

	for _, tt := range tests {
		t.Run(tt.planName, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyLine(tt.planName))
		})
	}
}

func TestLineTypeOf_ExplicitWins(t *testing.T) {
	assert.Equal(t, entity.LineWatch, lineTypeOf(NewScalar("Watch"), "Unlimited Plus"))
	assert.Equal(t, entity.LineVoice, lineTypeOf(NewScalar("voice"), "Tablet Plan"))
	assert.Equal(t, entity.LineTablet, lineTypeOf(NewScalar("something else"), "Tablet Plan"))
	assert.Equal(t, entity.LineTablet, lineTypeOf(Scalar{}, "Tablet Plan"))
}
