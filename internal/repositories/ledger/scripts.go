package ledger

import "github.com/redis/go-redis/v9"

// KEYS: event hash, events index, undecided index, games hash, game log, player history indexes...
// ARGV: id, body, game id or "", decision or ""
var appendEventScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
	return 0
end
redis.call('HSET', KEYS[1], 'body', ARGV[2])
redis.call('ZADD', KEYS[2], ARGV[1], ARGV[1])
if ARGV[4] ~= '' then
	redis.call('HSET', KEYS[1], 'decision', ARGV[4])
else
	redis.call('ZADD', KEYS[3], ARGV[1], ARGV[1])
end
if ARGV[3] ~= '' then
	redis.call('HSET', KEYS[1], 'game_id', ARGV[3])
	redis.call('HSET', KEYS[4], ARGV[3], ARGV[1])
	redis.call('ZADD', KEYS[5], ARGV[3], ARGV[1])
end
for i = 6, #KEYS do
	redis.call('ZADD', KEYS[i], ARGV[1], ARGV[1])
end
return 1
`)

// KEYS: event hash, undecided index
// ARGV: id, decision
var decideEventScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return -1
end
if redis.call('HSETNX', KEYS[1], 'decision', ARGV[2]) == 0 then
	return 0
end
redis.call('ZREM', KEYS[2], ARGV[1])
return 1
`)

// KEYS: checkpoint hash
// ARGV: target cursor
var advanceCursorScript = redis.NewScript(`
local current = tonumber(redis.call('HGET', KEYS[1], 'cursor') or '0')
local target = tonumber(ARGV[1])
if target > current then
	redis.call('HSET', KEYS[1], 'cursor', ARGV[1])
	redis.call('HINCRBY', KEYS[1], 'version', 1)
	return target
end
return current
`)
