package anime

// ToAnime maps a create input to an unsaved Anime.
func ToAnime(in CreateAnimeInput) Anime {
	return Anime{Name: in.Name}
}

// ToAnimes maps create inputs in order.
func ToAnimes(in []CreateAnimeInput) []Anime {
	out := make([]Anime, len(in))
	for i, item := range in {
		out[i] = ToAnime(item)
	}
	return out
}

// ToAnimeFromUpdate maps an update input to the Anime it replaces.
func ToAnimeFromUpdate(in UpdateAnimeInput) Anime {
	return Anime{ID: in.ID, Name: in.Name}
}
