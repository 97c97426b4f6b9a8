package postgresosm

const SRID4326 = 4326

const (
	planetPointTable = "planet_osm_point"
	planetLineTable  = "planet_osm_line"
)

// tagsExpr - все теги объекта как JSON (hstore колонка tags от osm2pgsql --hstore)
const tagsExpr = `COALESCE(hstore_to_json(tags), '{}'::json)::text`
