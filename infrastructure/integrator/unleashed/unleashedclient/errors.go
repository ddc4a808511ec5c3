package unleashedclient

import "fmt"

// RemoteUnavailableError indica que a API externa está indisponível:
// falha de transporte, timeout ou resposta 5xx. A busca não é repetida;
// o chamador decide como degradar.
type RemoteUnavailableError struct {
	StatusCode int
	Err        error
}

func (e *RemoteUnavailableError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("API externa indisponível (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("API externa indisponível: %v", e.Err)
}

func (e *RemoteUnavailableError) Unwrap() error {
	return e.Err
}

// AuthenticationFailedError indica credenciais rejeitadas pela API
// externa (401/403). Não há retry: a chave precisa ser corrigida.
type AuthenticationFailedError struct {
	StatusCode int
}

func (e *AuthenticationFailedError) Error() string {
	return fmt.Sprintf("autenticação rejeitada pela API externa (status %d)", e.StatusCode)
}
