package repository

import "errors"

// ErrNotFound indica que a escrita não encontrou o registro do usuário
var ErrNotFound = errors.New("registro não encontrado")
