package refdata

// populate inserts the hero and item reference data
func (d *DB) populate() error {
	heroes := []Hero{
		{1, "antimage", "Anti-Mage", "agi", ""},
		{2, "axe", "Axe", "str", ""},
		{3, "bane", "Bane", "all", ""},
		{4, "bloodseeker", "Bloodseeker", "agi", ""},
		{5, "crystal_maiden", "Crystal Maiden", "int", ""},
		{6, "drow_ranger", "Drow Ranger", "agi", ""},
		{7, "earthshaker", "Earthshaker", "str", ""},
		{8, "juggernaut", "Juggernaut", "agi", ""},
		{9, "mirana", "Mirana", "all", ""},
		{10, "morphling", "Morphling", "agi", ""},
		{11, "nevermore", "Shadow Fiend", "all", ""},
		{12, "phantom_lancer", "Phantom Lancer", "agi", ""},
		{13, "puck", "Puck", "int", ""},
		{14, "pudge", "Pudge", "str", ""},
		{15, "razor", "Razor", "agi", ""},
		{16, "sand_king", "Sand King", "all", ""},
		{17, "storm_spirit", "Storm Spirit", "int", ""},
		{18, "sven", "Sven", "str", ""},
		{19, "tiny", "Tiny", "str", ""},
		{20, "vengefulspirit", "Vengeful Spirit", "all", ""},
		{21, "windrunner", "Windranger", "all", ""},
		{22, "zuus", "Zeus", "int", ""},
		{23, "kunkka", "Kunkka", "str", ""},
		{25, "lina", "Lina", "int", ""},
		{26, "lion", "Lion", "int", ""},
		{27, "shadow_shaman", "Shadow Shaman", "int", ""},
		{28, "slardar", "Slardar", "str", ""},
		{29, "tidehunter", "Tidehunter", "str", ""},
		{30, "witch_doctor", "Witch Doctor", "int", ""},
		{31, "lich", "Lich", "int", ""},
		{32, "riki", "Riki", "agi", ""},
		{33, "enigma", "Enigma", "int", ""},
		{34, "tinker", "Tinker", "int", ""},
		{35, "sniper", "Sniper", "agi", ""},
		{36, "necrolyte", "Necrophos", "int", ""},
		{37, "warlock", "Warlock", "int", ""},
		{38, "beastmaster", "Beastmaster", "str", ""},
		{39, "queenofpain", "Queen of Pain", "int", ""},
		{40, "venomancer", "Venomancer", "all", ""},
		{41, "faceless_void", "Faceless Void", "agi", ""},
		{42, "skeleton_king", "Wraith King", "str", ""},
		{43, "death_prophet", "Death Prophet", "int", ""},
		{44, "phantom_assassin", "Phantom Assassin", "agi", ""},
		{45, "pugna", "Pugna", "int", ""},
		{46, "templar_assassin", "Templar Assassin", "agi", ""},
		{47, "viper", "Viper", "agi", ""},
		{48, "luna", "Luna", "agi", ""},
		{49, "dragon_knight", "Dragon Knight", "str", ""},
		{50, "dazzle", "Dazzle", "all", ""},
		{51, "rattletrap", "Clockwerk", "all", ""},
		{52, "leshrac", "Leshrac", "int", ""},
		{53, "furion", "Nature's Prophet", "all", ""},
		{54, "life_stealer", "Lifestealer", "str", ""},
		{55, "dark_seer", "Dark Seer", "all", ""},
		{56, "clinkz", "Clinkz", "agi", ""},
		{57, "omniknight", "Omniknight", "str", ""},
		{58, "enchantress", "Enchantress", "all", ""},
		{59, "huskar", "Huskar", "str", ""},
		{60, "night_stalker", "Night Stalker", "str", ""},
		{61, "broodmother", "Broodmother", "all", ""},
		{62, "bounty_hunter", "Bounty Hunter", "agi", ""},
		{63, "weaver", "Weaver", "agi", ""},
		{64, "jakiro", "Jakiro", "int", ""},
		{65, "batrider", "Batrider", "all", ""},
		{66, "chen", "Chen", "all", ""},
		{67, "spectre", "Spectre", "agi", ""},
		{68, "ancient_apparition", "Ancient Apparition", "int", ""},
		{69, "doom_bringer", "Doom", "str", ""},
		{70, "ursa", "Ursa", "agi", ""},
		{71, "spirit_breaker", "Spirit Breaker", "str", ""},
		{72, "gyrocopter", "Gyrocopter", "agi", ""},
		{73, "alchemist", "Alchemist", "str", ""},
		{74, "invoker", "Invoker", "all", ""},
		{75, "silencer", "Silencer", "int", ""},
		{76, "obsidian_destroyer", "Outworld Destroyer", "int", ""},
		{77, "lycan", "Lycan", "str", ""},
		{78, "brewmaster", "Brewmaster", "all", ""},
		{79, "shadow_demon", "Shadow Demon", "int", ""},
		{80, "lone_druid", "Lone Druid", "agi", ""},
		{81, "chaos_knight", "Chaos Knight", "str", ""},
		{82, "meepo", "Meepo", "agi", ""},
		{83, "treant", "Treant Protector", "str", ""},
		{84, "ogre_magi", "Ogre Magi", "str", ""},
		{85, "undying", "Undying", "str", ""},
		{86, "rubick", "Rubick", "int", ""},
		{87, "disruptor", "Disruptor", "int", ""},
		{88, "nyx_assassin", "Nyx Assassin", "all", ""},
		{89, "naga_siren", "Naga Siren", "agi", ""},
		{90, "keeper_of_the_light", "Keeper of the Light", "int", ""},
		{91, "wisp", "Io", "all", ""},
		{92, "visage", "Visage", "all", ""},
		{93, "slark", "Slark", "agi", ""},
		{94, "medusa", "Medusa", "agi", ""},
		{95, "troll_warlord", "Troll Warlord", "agi", ""},
		{96, "centaur", "Centaur Warrunner", "str", ""},
		{97, "magnataur", "Magnus", "all", ""},
		{98, "shredder", "Timbersaw", "all", ""},
		{99, "bristleback", "Bristleback", "str", ""},
		{100, "tusk", "Tusk", "str", ""},
		{101, "skywrath_mage", "Skywrath Mage", "int", ""},
		{102, "abaddon", "Abaddon", "all", ""},
		{103, "elder_titan", "Elder Titan", "str", ""},
		{104, "legion_commander", "Legion Commander", "str", ""},
		{105, "techies", "Techies", "all", ""},
		{106, "ember_spirit", "Ember Spirit", "agi", ""},
		{107, "earth_spirit", "Earth Spirit", "str", ""},
		{108, "abyssal_underlord", "Underlord", "str", ""},
		{109, "terrorblade", "Terrorblade", "agi", ""},
		{110, "phoenix", "Phoenix", "str", ""},
		{111, "oracle", "Oracle", "int", ""},
		{112, "winter_wyvern", "Winter Wyvern", "all", ""},
		{113, "arc_warden", "Arc Warden", "agi", ""},
		{114, "monkey_king", "Monkey King", "agi", ""},
		{119, "dark_willow", "Dark Willow", "all", ""},
		{120, "pangolier", "Pangolier", "all", ""},
		{121, "grimstroke", "Grimstroke", "int", ""},
		{123, "hoodwink", "Hoodwink", "agi", ""},
		{126, "void_spirit", "Void Spirit", "all", ""},
		{128, "snapfire", "Snapfire", "all", ""},
		{129, "mars", "Mars", "str", ""},
		{135, "dawnbreaker", "Dawnbreaker", "str", ""},
		{136, "marci", "Marci", "all", ""},
		{137, "primal_beast", "Primal Beast", "str", ""},
		{138, "muerta", "Muerta", "int", ""},
	}

	items := []Item{
		{1, "blink", ""},
		{29, "boots", ""},
		{34, "magic_stick", ""},
		{36, "magic_wand", ""},
		{40, "dust", ""},
		{41, "bottle", ""},
		{42, "ward_observer", ""},
		{43, "ward_sentry", ""},
		{44, "tango", ""},
		{45, "gem", ""},
		{46, "tpscroll", ""},
		{48, "travel_boots", ""},
		{50, "phase_boots", ""},
		{63, "power_treads", ""},
		{65, "hand_of_midas", ""},
		{79, "mekansm", ""},
		{81, "vladmir", ""},
		{92, "pipe", ""},
		{96, "urn_of_shadows", ""},
		{102, "force_staff", ""},
		{108, "ultimate_scepter", ""},
		{110, "refresher", ""},
		{112, "assault", ""},
		{114, "heart", ""},
		{116, "black_king_bar", ""},
		{119, "shivas_guard", ""},
		{123, "sphere", ""},
		{125, "vanguard", ""},
		{127, "blade_mail", ""},
		{135, "rapier", ""},
		{137, "monkey_king_bar", ""},
		{139, "radiance", ""},
		{141, "butterfly", ""},
		{143, "greater_crit", ""},
		{145, "basher", ""},
		{147, "bfury", ""},
		{149, "manta", ""},
		{152, "armlet", ""},
		{154, "invis_sword", ""},
		{188, "smoke_of_deceit", ""},
	}

	tx, err := d.db.Begin()
	if err != nil {
		return err
	}

	heroStmt, err := tx.Prepare("INSERT OR REPLACE INTO heroes (id, name, localized_name, primary_attr) VALUES (?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return err
	}
	defer heroStmt.Close()

	for _, h := range heroes {
		if _, err := heroStmt.Exec(h.ID, h.Name, h.LocalizedName, h.PrimaryAttr); err != nil {
			tx.Rollback()
			return err
		}
	}

	itemStmt, err := tx.Prepare("INSERT OR REPLACE INTO items (id, name) VALUES (?, ?)")
	if err != nil {
		tx.Rollback()
		return err
	}
	defer itemStmt.Close()

	for _, it := range items {
		if _, err := itemStmt.Exec(it.ID, it.Name); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}
