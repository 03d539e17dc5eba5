package domain

import m "gooze.dev/pkg/wasmut/internal/model"

// ShardMutations keeps the mutations whose ID falls into shardIndex under
// round-robin distribution over totalShardCount shards. A count of zero or
// one keeps everything.
func ShardMutations(mutations []m.Mutation, shardIndex, totalShardCount int) []m.Mutation {
	if totalShardCount <= 1 {
		return mutations
	}

	var shard []m.Mutation

	for _, mutation := range mutations {
		if int(mutation.ID%uint(totalShardCount)) == shardIndex {
			shard = append(shard, mutation)
		}
	}

	return shard
}
