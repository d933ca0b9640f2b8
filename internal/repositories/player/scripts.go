package player

import "github.com/redis/go-redis/v9"

// KEYS: checkpoint, players index, leaderboard, last played index, player keys...
// ARGV: cursor, then per player: id, body, leaderboard value, last played unix or ""
var commitEffectScript = redis.NewScript(`
local current = tonumber(redis.call('HGET', KEYS[1], 'cursor') or '0')
local target = tonumber(ARGV[1])
if current ~= target - 1 then
	return {current, 0}
end
for i = 5, #KEYS do
	local a = 2 + (i - 5) * 4
	redis.call('SET', KEYS[i], ARGV[a + 1])
	redis.call('ZADD', KEYS[2], ARGV[a], ARGV[a])
	redis.call('ZADD', KEYS[3], ARGV[a + 2], ARGV[a])
	if ARGV[a + 3] ~= '' then
		redis.call('ZADD', KEYS[4], ARGV[a + 3], ARGV[a])
	else
		redis.call('ZREM', KEYS[4], ARGV[a])
	end
end
redis.call('HSET', KEYS[1], 'cursor', ARGV[1])
redis.call('HINCRBY', KEYS[1], 'version', 1)
return {target, 1}
`)

// KEYS: checkpoint, players index, leaderboard, last played index
// ARGV: player key prefix
var resetProjectionScript = redis.NewScript(`
local members = redis.call('ZRANGE', KEYS[2], 0, -1)
for _, id in ipairs(members) do
	redis.call('DEL', ARGV[1] .. id)
end
redis.call('DEL', KEYS[2], KEYS[3], KEYS[4])
redis.call('HSET', KEYS[1], 'cursor', 0)
redis.call('HINCRBY', KEYS[1], 'version', 1)
return #members
`)

// KEYS: registry, handle claim, external id claims...
// ARGV: player id, handle
var claimIdentityScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[2]) == 1 then
	return 0
end
for i = 3, #KEYS do
	if redis.call('EXISTS', KEYS[i]) == 1 then
		return -1
	end
end
if redis.call('HEXISTS', KEYS[1], ARGV[1]) == 1 then
	return -2
end
for i = 2, #KEYS do
	redis.call('SET', KEYS[i], ARGV[1])
end
redis.call('HSET', KEYS[1], ARGV[1], ARGV[2])
return 1
`)

// KEYS: registry, handle claim, external id claims...
// ARGV: player id
var releaseIdentityScript = redis.NewScript(`
for i = 2, #KEYS do
	if redis.call('GET', KEYS[i]) == ARGV[1] then
		redis.call('DEL', KEYS[i])
	end
end
redis.call('HDEL', KEYS[1], ARGV[1])
return 1
`)
