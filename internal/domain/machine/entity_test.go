//go:build unit

package machine_test

import (
	"strings"
	"testing"

	"fablab-scheduler/internal/domain/machine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMachine(t *testing.T) {
	t.Run("valid machine", func(t *testing.T) {
		m, err := machine.NewMachine("  Epilog Fusion  ", " LSR-01 ", "laser_cutter")
		require.NoError(t, err)
		assert.Equal(t, "Epilog Fusion", m.Name())
		assert.Equal(t, "LSR-01", m.Code())
		assert.Equal(t, "laser_cutter", m.Category())
		assert.True(t, m.Bookable())
	})

	cases := []struct {
		name      string
		machineNm string
		code      string
		errIs     error
	}{
		{name: "empty name", machineNm: "", code: "LSR-01", errIs: machine.ErrEmptyMachineName},
		{name: "whitespace name", machineNm: "   ", code: "LSR-01", errIs: machine.ErrEmptyMachineName},
		{name: "name too long", machineNm: strings.Repeat("a", machine.MaxMachineNameLength+1), code: "LSR-01", errIs: machine.ErrNameTooLong},
		{name: "empty code", machineNm: "Epilog Fusion", code: "  ", errIs: machine.ErrEmptyMachineCode},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := machine.NewMachine(c.machineNm, c.code, "laser_cutter")
			require.ErrorIs(t, err, c.errIs)
		})
	}
}

func TestMachineBookable(t *testing.T) {
	cases := []struct {
		name                         string
		maintenance, broken, retired bool
		bookable                     bool
	}{
		{name: "clean machine", bookable: true},
		{name: "maintenance", maintenance: true},
		{name: "broken", broken: true},
		{name: "retired", retired: true},
		{name: "all flags", maintenance: true, broken: true, retired: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := testMachine(t, c.maintenance, c.broken, c.retired)
			assert.Equal(t, c.bookable, m.Bookable())
		})
	}
}
