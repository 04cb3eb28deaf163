package server

import "fmt"

const HTTP_SUCCESS = 200
const HTTP_BAD_REQUEST = 400
const HTTP_NOT_FOUND = 404
const HTTP_TIMEOUT = 408
const HTTP_SERVER_ERR = 503

type ResponseCode int

const (
	CONSOLE_READY ResponseCode = iota
	CONSOLE_LIMIT
	CONSOLE_INVALID
)

func (h ResponseCode) ToHttp() int {
	switch h {
	case CONSOLE_READY:
		return HTTP_SUCCESS
	case CONSOLE_LIMIT:
		return HTTP_SERVER_ERR
	case CONSOLE_INVALID:
		return HTTP_BAD_REQUEST
	default:
		panic(h)
	}
}

func (cs ConsoleState) Name() string {
	switch cs {
	case CS_NEW:
		return "NEW"
	case CS_PLAY:
		return "PLAY"
	case CS_OVER:
		return "OVER"
	case CS_ERR:
		return "ERR"
	default:
		return fmt.Sprintf("n/a:%d", cs)
	}
}

type ConsoleAwaiting struct {
	ResponseCode ResponseCode
	Console      *Console
}

type ConsoleRequest struct {
	ConsoleAwaiting chan ConsoleAwaiting
}
