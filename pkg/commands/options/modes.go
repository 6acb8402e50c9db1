package options

import (
	"github.com/spf13/pflag"

	"tableflip.dev/timeline/pkg/transfer"
	"tableflip.dev/timeline/pkg/view"
)

// ViewModeValue is a pflag.Value for view.Mode.
type ViewModeValue struct {
	Mode view.Mode
}

var _ pflag.Value = (*ViewModeValue)(nil)

func (v *ViewModeValue) String() string { return v.Mode.String() }

func (v *ViewModeValue) Set(s string) error {
	m, err := view.ParseMode(s)
	if err != nil {
		return err
	}
	v.Mode = m
	return nil
}

func (*ViewModeValue) Type() string { return "view" }

// ImportModeValue is a pflag.Value for transfer.Mode.
type ImportModeValue struct {
	Mode transfer.Mode
}

var _ pflag.Value = (*ImportModeValue)(nil)

func (v *ImportModeValue) String() string { return v.Mode.String() }

func (v *ImportModeValue) Set(s string) error {
	m, err := transfer.ParseMode(s)
	if err != nil {
		return err
	}
	v.Mode = m
	return nil
}

func (*ImportModeValue) Type() string { return "mode" }
