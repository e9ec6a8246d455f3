package infra_redis_state

import "github.com/go-redis/redis"

// Script replies use small integer codes so the driver can map them onto
// domain errors without parsing error strings.
const (
	codeOK           int64 = 1
	codeNoop         int64 = 0
	codeNotFound     int64 = -1
	codeInvalidState int64 = -2
	codeConflict     int64 = -3
	codeLimit        int64 = -4
	codeStale        int64 = -5
	codeForbidden    int64 = -6
)

// KEYS: room, members. ARGV: status, host id, nickname, created at.
var createRoomScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
	return -3
end
redis.call('HSET', KEYS[1],
	'status', ARGV[1],
	'host_id', ARGV[2],
	'guest_id', '',
	'host_ready', '0',
	'guest_ready', '0',
	'created_at', ARGV[4],
	'version', '0')
redis.call('HSET', KEYS[2], ARGV[2], ARGV[3])
return 1
`)

// KEYS: room, members. ARGV: user id, nickname, waiting status, capacity.
// A room without a host is being torn down and takes no one.
var addMemberScript = redis.NewScript(`
local room = redis.call('HMGET', KEYS[1], 'status', 'host_id')
local status = room[1]
if not status or not room[2] or room[2] == '' then
	return -1
end
if redis.call('HEXISTS', KEYS[2], ARGV[1]) == 1 then
	return 0
end
if status ~= ARGV[3] then
	return -2
end
if redis.call('HLEN', KEYS[2]) >= tonumber(ARGV[4]) then
	return -3
end
redis.call('HSET', KEYS[2], ARGV[1], ARGV[2])
redis.call('HSET', KEYS[1], 'guest_id', ARGV[1])
redis.call('HINCRBY', KEYS[1], 'version', 1)
return 1
`)

// KEYS: room, members, draft, swipes, pool. ARGV: user id.
// Returns the number of members left, or -1 if the user was not a member.
// A remaining guest takes over the host seat. The last one out deletes the
// room in the same call.
var removeMemberScript = redis.NewScript(`
if redis.call('HDEL', KEYS[2], ARGV[1]) == 0 then
	return -1
end
redis.call('DEL', KEYS[3], KEYS[4])
local left = redis.call('HLEN', KEYS[2])
if left == 0 then
	redis.call('DEL', KEYS[1], KEYS[2], KEYS[5])
	return 0
end
if redis.call('EXISTS', KEYS[1]) == 1 then
	local room = redis.call('HMGET', KEYS[1], 'host_id', 'guest_id', 'guest_ready')
	if room[1] == ARGV[1] then
		redis.call('HSET', KEYS[1], 'host_id', room[2] or '', 'host_ready', room[3] or '0')
		redis.call('HSET', KEYS[1], 'guest_id', '', 'guest_ready', '0')
	elseif room[2] == ARGV[1] then
		redis.call('HSET', KEYS[1], 'guest_id', '', 'guest_ready', '0')
	end
	redis.call('HINCRBY', KEYS[1], 'version', 1)
end
return left
`)

// KEYS: room. ARGV: target status, allowed source statuses...
// Returns {code, status observed before the call}.
var transitionScript = redis.NewScript(`
local status = redis.call('HGET', KEYS[1], 'status')
if not status then
	return {-1, ''}
end
for i = 2, #ARGV do
	if status == ARGV[i] then
		redis.call('HSET', KEYS[1], 'status', ARGV[1])
		redis.call('HINCRBY', KEYS[1], 'version', 1)
		return {1, status}
	end
end
return {0, status}
`)

// KEYS: room. ARGV: user id, ready flag, selecting status.
var setReadyScript = redis.NewScript(`
local room = redis.call('HMGET', KEYS[1], 'status', 'host_id', 'guest_id')
if not room[1] then
	return -1
end
local field
if room[2] == ARGV[1] then
	field = 'host_ready'
elseif room[3] == ARGV[1] then
	field = 'guest_ready'
else
	return -6
end
if room[1] ~= ARGV[3] then
	return -2
end
redis.call('HSET', KEYS[1], field, ARGV[2])
return 1
`)

// KEYS: room, members, draft. ARGV: user id, media id, capacity, ttl ms.
// A fresh draft key gets the room TTL right away.
var addDraftScript = redis.NewScript(`
local status = redis.call('HGET', KEYS[1], 'status')
if not status then
	return -1
end
if redis.call('HEXISTS', KEYS[2], ARGV[1]) == 0 then
	return -6
end
if status ~= 'WAITING' and status ~= 'SELECTING' then
	return -2
end
if redis.call('SISMEMBER', KEYS[3], ARGV[2]) == 1 then
	return 0
end
if redis.call('SCARD', KEYS[3]) >= tonumber(ARGV[3]) then
	return -4
end
redis.call('SADD', KEYS[3], ARGV[2])
if tonumber(ARGV[4]) > 0 then
	redis.call('PEXPIRE', KEYS[3], ARGV[4])
end
return 1
`)

// KEYS: room, members, draft. ARGV: user id, media id.
var removeDraftScript = redis.NewScript(`
local status = redis.call('HGET', KEYS[1], 'status')
if not status then
	return -1
end
if redis.call('HEXISTS', KEYS[2], ARGV[1]) == 0 then
	return -6
end
if status ~= 'WAITING' and status ~= 'SELECTING' then
	return -2
end
return redis.call('SREM', KEYS[3], ARGV[2])
`)

// KEYS: room, pool, drafts... ARGV: pool items in order.
// The supplied pool must equal the union of the drafts, otherwise a draft
// changed after it was read and the caller has to rebuild it.
var createPoolScript = redis.NewScript(`
local room = redis.call('HMGET', KEYS[1], 'status', 'host_ready', 'guest_ready')
if not room[1] then
	return -1
end
if room[1] ~= 'SELECTING' or room[2] ~= '1' or room[3] ~= '1' then
	return 0
end
local union = {}
if #KEYS > 2 then
	union = redis.call('SUNION', unpack(KEYS, 3))
end
if #union ~= #ARGV then
	return -5
end
local supplied = {}
for i = 1, #ARGV do
	supplied[ARGV[i]] = true
end
for i = 1, #union do
	if not supplied[union[i]] then
		return -5
	end
end
redis.call('DEL', KEYS[2])
if #ARGV > 0 then
	redis.call('RPUSH', KEYS[2], unpack(ARGV))
end
redis.call('HSET', KEYS[1], 'status', 'SWIPING')
redis.call('HINCRBY', KEYS[1], 'version', 1)
return 1
`)

// KEYS: room, members, pool, swipes. ARGV: user id, media id, action, ttl ms.
// Returns {code, recorded action}. An existing decision is never overwritten.
var recordSwipeScript = redis.NewScript(`
local status = redis.call('HGET', KEYS[1], 'status')
if not status then
	return {-1, ''}
end
if redis.call('HEXISTS', KEYS[2], ARGV[1]) == 0 then
	return {-6, ''}
end
if status ~= 'SWIPING' then
	return {-2, ''}
end
local found = false
for _, id in ipairs(redis.call('LRANGE', KEYS[3], 0, -1)) do
	if id == ARGV[2] then
		found = true
		break
	end
end
if not found then
	return {-1, ''}
end
if redis.call('HSETNX', KEYS[4], ARGV[2], ARGV[3]) == 1 then
	if tonumber(ARGV[4]) > 0 then
		redis.call('PEXPIRE', KEYS[4], ARGV[4])
	end
	return {1, ARGV[3]}
end
return {0, redis.call('HGET', KEYS[4], ARGV[2])}
`)

// KEYS: room. ARGV: media id, matched at.
var finalizeMatchScript = redis.NewScript(`
local status = redis.call('HGET', KEYS[1], 'status')
if not status then
	return -1
end
if status == 'MATCHED' then
	return -3
end
if status ~= 'SWIPING' then
	return -2
end
redis.call('HSET', KEYS[1], 'status', 'MATCHED', 'matched_media_id', ARGV[1], 'matched_at', ARGV[2])
redis.call('HINCRBY', KEYS[1], 'version', 1)
return 1
`)

// KEYS: room. ARGV: media id.
var revertMatchScript = redis.NewScript(`
if redis.call('HGET', KEYS[1], 'status') ~= 'MATCHED' then
	return 0
end
if redis.call('HGET', KEYS[1], 'matched_media_id') ~= ARGV[1] then
	return 0
end
redis.call('HSET', KEYS[1], 'status', 'SWIPING')
redis.call('HDEL', KEYS[1], 'matched_media_id', 'matched_at')
redis.call('HINCRBY', KEYS[1], 'version', 1)
return 1
`)
