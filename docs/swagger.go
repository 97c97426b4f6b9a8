// Package docs Rail Route Service API.
//
// Сервис маршрутов по железнодорожной сети OpenStreetMap.
// Строит граф из станций и путей и ищет кратчайший путь между станциями;
// если пути нет, отдаёт прямую линию с причиной.
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
