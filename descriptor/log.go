package descriptor

import (
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("javapoet.descriptor")
