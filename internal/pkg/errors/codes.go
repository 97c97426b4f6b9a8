package errors

import "net/http"

var (
	ErrStationNotFound = New(
		"STATION_NOT_FOUND",
		"Station not found",
		http.StatusNotFound,
	)

	ErrSameStation = New(
		"SAME_STATION",
		"Origin and destination must differ",
		http.StatusBadRequest,
	)

	ErrEmptyGraph = New(
		"EMPTY_GRAPH",
		"Railway network is empty",
		http.StatusServiceUnavailable,
	)

	ErrNoNodesNearStation = New(
		"NO_NODES_NEAR_STATION",
		"No railway nodes near station",
		http.StatusUnprocessableEntity,
	)

	ErrNoPathFound = New(
		"NO_PATH_FOUND",
		"No railway path between stations",
		http.StatusUnprocessableEntity,
	)

	ErrNetworkNotLoaded = New(
		"NETWORK_NOT_LOADED",
		"Railway network is not loaded yet",
		http.StatusServiceUnavailable,
	)

	ErrDatasetError = New(
		"DATASET_ERROR",
		"Failed to load railway dataset",
		http.StatusInternalServerError,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
