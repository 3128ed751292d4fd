// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package requester

import "errors"

var ErrUnexpectedStatus = errors.New("received unexpected status code")
