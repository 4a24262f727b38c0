package constants

// SearchAirports matches a lower-cased pattern against iata, name and city in
// import order. Bind vars use '?' and are rebound per driver by sqlx.
const SearchAirports = `
	SELECT iata, name, city, country, latitude, longitude
	FROM airports
	WHERE LOWER(iata) LIKE ? ESCAPE '\' OR LOWER(name) LIKE ? ESCAPE '\' OR LOWER(city) LIKE ? ESCAPE '\'
	ORDER BY seq
	LIMIT ?
	`
