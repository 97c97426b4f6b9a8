package routing

import "errors"

var (
	// ErrEmptyGraph - в графе нет ни одного узла
	ErrEmptyGraph = errors.New("routing: graph is empty")
	// ErrNoNodesNearStation - у станции отправления или назначения нет узлов в радиусе поиска
	ErrNoNodesNearStation = errors.New("routing: no graph nodes near station")
	// ErrNoPathFound - ни одна пара кандидатов не связана, и мост построить не удалось
	ErrNoPathFound = errors.New("routing: no path found")
)
