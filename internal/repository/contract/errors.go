package contract

import "errors"

var ErrDirectlyOwned = errors.New("entity is owned by its workspace_id column and has no link table")
