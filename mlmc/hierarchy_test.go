package mlmc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHierarchy_RequiresModels(t *testing.T) {
	_, err := NewHierarchy()
	var perr *InvalidParameterError
	assert.True(t, errors.As(err, &perr), "want InvalidParameterError, got %v", err)
}

func TestNewHierarchy_RejectsNilModel(t *testing.T) {
	_, err := NewHierarchy(identityModel{cost: 1}, nil)
	var perr *InvalidParameterError
	assert.True(t, errors.As(err, &perr), "want InvalidParameterError, got %v", err)
}

func TestHierarchy_LevelsAndOrder(t *testing.T) {
	coarse := identityModel{cost: 1}
	fine := offsetModel{offset: 1, cost: 2}
	h := mustHierarchy(coarse, fine)

	assert.Equal(t, 2, h.Levels())
	assert.Equal(t, coarse, h.Model(0))
	assert.Equal(t, fine, h.Model(1))
}

func TestHierarchy_DeclaredCosts(t *testing.T) {
	all := mustHierarchy(identityModel{cost: 1}, offsetModel{offset: 1, cost: 2})
	assert.True(t, all.DeclaredCosts())

	mixed := mustHierarchy(identityModel{cost: 1}, uncosted{offsetModel{offset: 1, cost: 2}})
	assert.False(t, mixed.DeclaredCosts())
}
