package redisstore

const prefix = "simulador:"

func flagKey(visitorID string) string   { return prefix + "lead_flag:" + visitorID }
func sessionKey(id string) string       { return prefix + "session:" + id }
func recentKey(visitorID string) string { return prefix + "recent_leads:" + visitorID }
