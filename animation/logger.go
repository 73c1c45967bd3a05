// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package animation

import (
	"github.com/gre-42/mlib/util/logger"
)

// Package logger
var log = logger.New("ANIMATION", logger.Default)
