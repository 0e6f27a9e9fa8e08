package schematic

import "fmt"

// baseNames maps legacy numeric block ids to model names. Covers the
// blocks that actually occur in circulating schematics; anything else
// resolves to a synthetic name and falls back to the default stamp.
var baseNames = map[int]string{
	1:   "stone",
	2:   "grass_block",
	3:   "dirt",
	4:   "cobblestone",
	5:   "oak_planks",
	7:   "bedrock",
	12:  "sand",
	13:  "gravel",
	14:  "gold_ore",
	15:  "iron_ore",
	16:  "coal_ore",
	17:  "oak_log",
	18:  "oak_leaves",
	20:  "glass",
	24:  "sandstone",
	35:  "white_wool",
	41:  "gold_block",
	42:  "iron_block",
	43:  "stone_slab",
	44:  "stone_slab",
	45:  "bricks",
	47:  "bookshelf",
	48:  "mossy_cobblestone",
	49:  "obsidian",
	50:  "torch",
	53:  "oak_stairs",
	54:  "chest",
	57:  "diamond_block",
	58:  "crafting_table",
	61:  "furnace",
	64:  "oak_door",
	65:  "ladder",
	67:  "cobblestone_stairs",
	69:  "lever",
	77:  "stone_button",
	78:  "snow",
	79:  "ice",
	80:  "snow_block",
	82:  "clay",
	85:  "oak_fence",
	86:  "pumpkin",
	87:  "netherrack",
	89:  "glowstone",
	98:  "stone_bricks",
	102: "glass_pane",
	107: "oak_fence_gate",
	108: "brick_stairs",
	109: "stone_brick_stairs",
	112: "nether_bricks",
	114: "nether_brick_stairs",
	121: "end_stone",
	125: "oak_slab",
	126: "oak_slab",
	128: "sandstone_stairs",
	134: "spruce_stairs",
	135: "birch_stairs",
	136: "jungle_stairs",
	155: "quartz_block",
	156: "quartz_stairs",
	159: "white_terracotta",
	172: "terracotta",
}

// Ids whose data value selects a sub-type rather than an orientation.
var variantNames = map[int]map[int]string{
	5: { // planks
		0: "oak_planks", 1: "spruce_planks", 2: "birch_planks",
		3: "jungle_planks", 4: "acacia_planks", 5: "dark_oak_planks",
	},
	17: { // logs: bits 0–1 species, bits 2–3 orientation
		0: "oak_log", 1: "spruce_log", 2: "birch_log", 3: "jungle_log",
	},
	35: { // wool colors
		0: "white_wool", 1: "orange_wool", 2: "magenta_wool", 3: "light_blue_wool",
		4: "yellow_wool", 5: "lime_wool", 6: "pink_wool", 7: "gray_wool",
		8: "light_gray_wool", 9: "cyan_wool", 10: "purple_wool", 11: "blue_wool",
		12: "brown_wool", 13: "green_wool", 14: "red_wool", 15: "black_wool",
	},
	159: { // stained terracotta
		0: "white_terracotta", 1: "orange_terracotta", 2: "magenta_terracotta",
		3: "light_blue_terracotta", 4: "yellow_terracotta", 5: "lime_terracotta",
		6: "pink_terracotta", 7: "gray_terracotta", 8: "light_gray_terracotta",
		9: "cyan_terracotta", 10: "purple_terracotta", 11: "blue_terracotta",
		12: "brown_terracotta", 13: "green_terracotta", 14: "red_terracotta",
		15: "black_terracotta",
	},
}

// BlockName resolves a legacy (id, data) pair to a model name.
func BlockName(id, data int) string {
	if variants, ok := variantNames[id]; ok {
		key := data
		if id == 17 {
			key = data & 0x3 // mask orientation bits
		}
		if name, ok := variants[key]; ok {
			return name
		}
	}
	if name, ok := baseNames[id]; ok {
		return name
	}
	return fmt.Sprintf("unknown_%d", id)
}
