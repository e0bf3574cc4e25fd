package game

type Role string

const (
	RoleHuman Role = "human"
	RoleAlien Role = "alien"
)

// DetermineRole stamps the hidden role for a session. Pure function of the
// seed; called exactly once, at session creation.
func DetermineRole(cfg Config, seed string) Role {
	rng := NewSeededRand(seed + ":role")
	if rng.Float64() < cfg.AlienChance {
		return RoleAlien
	}
	return RoleHuman
}
