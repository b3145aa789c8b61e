package favorite

// SummaryResponse — все избранное пользователя по категориям,
// ключи вида "favorite_starships"
type SummaryResponse map[string]any
