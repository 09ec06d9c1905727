// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.  Each error
// belongs to a class that can be tested with the IsErrXxx functions,
// even when wrapped with fmt.Errorf("...: %w", err).
//
// Also provides last resort logging for fatal conditions.
package fault
