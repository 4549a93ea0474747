package app

import (
	"time"

	"github.com/Lenostatos/Orinoco-2/internal/registry"
	"github.com/Lenostatos/Orinoco-2/modules/arithmetic"
	"github.com/Lenostatos/Orinoco-2/modules/datetime"
	"github.com/Lenostatos/Orinoco-2/modules/logical"
	"github.com/Lenostatos/Orinoco-2/modules/misc"
	"github.com/Lenostatos/Orinoco-2/modules/statistical"
	"github.com/Lenostatos/Orinoco-2/modules/text"
)

// coreModules is the definitive list of all modules that are compiled into
// the orinoco binary.
func coreModules(loc *time.Location) []registry.Module {
	return []registry.Module{
		&arithmetic.Module{},
		&statistical.Module{},
		&logical.Module{},
		&text.Module{},
		&datetime.Module{Location: loc},
		&misc.Module{},
	}
}
