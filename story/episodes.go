package story

func say(name string, pos StagePosition, emote, text string) Step {
	return Step{Kind: Dialogue, Character: name, Position: pos, Emote: emote, Text: text}
}

func think(name string, pos StagePosition, text string) Step {
	return Step{Kind: Thought, Character: name, Position: pos, Text: text}
}

func walk(name string, x float64, thought string) Step {
	return Step{Kind: Movement, Character: name, TargetX: x, Text: thought}
}

// Episodes is the catalog, in menu order.
var Episodes = []Episode{
	{
		ID:    "fitnessChallenge",
		Title: "The Fitness Challenge",
		Description: "Fitness Fiona challenges the neighborhood to a fitness competition, but not everyone " +
			"is excited about her 5AM workout routines. Will her enthusiasm win them over or drive them crazy?",
		Cast: []string{"Fitness Fiona", "Lazy Larry", "Office Olivia", "Skeptical Sam"},
		Scenes: []Scene{
			{
				Setting: "morning",
				Steps: []Step{
					say("Fitness Fiona", StageCenter, "!!", "GOOOOD MORNING NEIGHBORS! Time for our 5AM POWER WORKOUT!"),
					say("Lazy Larry", StageRight, "zzz", "Ughhh... it's too early. Five more minutes..."),
					walk("Lazy Larry", 820, "Ugh... five more minutes..."),
					say("Fitness Fiona", StageCenter, "1st!", "No excuses, Larry! I've organized a neighborhood fitness challenge! First prize is a PROTEIN SMOOTHIE MACHINE!"),
					say("Office Olivia", StageLeft, "-_-", "Fiona, some of us have to work late. Can we maybe do this at a reasonable hour?"),
					say("Fitness Fiona", StageCenter, "*", "Studies show morning workouts boost productivity by 200%! Let's start with 50 JUMPING JACKS!"),
				},
			},
			{
				Setting: "afternoon",
				Steps: []Step{
					say("Lazy Larry", StageRight, "x_x", "I can't feel my legs after this morning. Why did I let you talk me into this?"),
					say("Fitness Fiona", StageCenter, "*burn*", "That's the burn of SUCCESS, Larry! Wait until tomorrow's STAIR CHALLENGE!"),
					say("Skeptical Sam", StageLeft, "o_O", "There's no way I'm joining this madness. These fitness challenges always fizzle out after a week."),
					say("Fitness Fiona", StageCenter, "100%", "Sam! With that attitude you're missing out on the GAINS OF GLORY! I haven't missed a day in THREE YEARS!"),
					think("Office Olivia", StageLeft, "Actually, I do feel more alert at work today..."),
				},
			},
			{
				Setting: "evening",
				Steps: []Step{
					say("Fitness Fiona", StageCenter, "H2O", "EVENING COOL-DOWN EVERYONE! Remember to hydrate and stretch those muscles!"),
					say("Lazy Larry", StageRight, "!?", "I've never been so exhausted yet... strangely energized?"),
					say("Skeptical Sam", StageLeft, "1", "Fine, I'll try ONE day. But if you wake me before 7AM, I'm out."),
					say("Fitness Fiona", StageCenter, "/\\", "THAT'S THE SPIRIT! Team, tomorrow we conquer THE MOUNTAIN TRAIL! Bring water and positive vibes!"),
					say("Office Olivia", StageLeft, "☺", "I can't believe I'm saying this, but I'm actually looking forward to it!"),
				},
			},
		},
	},
	{
		ID:    "talentShow",
		Title: "The Talent Show",
		Description: "The neighborhood is organizing a talent show, and Fitness Fiona is determined to show that " +
			"fitness routines can be entertaining too. Will her extreme workout performance win over the audience?",
		Cast: []string{"Fitness Fiona", "Artistic Andy", "Musical Maria", "Comedy Carl"},
		Scenes: []Scene{
			{
				Setting: "afternoon",
				Steps: []Step{
					say("Artistic Andy", StageLeft, "~art~", "Alright everyone, the neighborhood talent show is this weekend! Who's participating?"),
					say("Musical Maria", StageRight, "♪", "I'll be performing my violin solo. I've been practicing for weeks!"),
					say("Fitness Fiona", StageCenter, "*dance*", "Count me in! I'll showcase the POWER OF FITNESS with my extreme aerobic dance routine!"),
					say("Comedy Carl", StageLeft, "*smirk*", "Uhh... Fiona, this is a talent show, not a gym demonstration."),
					say("Fitness Fiona", StageCenter, "*flex*", "Fitness IS an art, Carl! Just wait until you see my one-handed pushups set to classical music!"),
				},
			},
			{
				Setting: "evening",
				Steps: []Step{
					say("Fitness Fiona", StageCenter, "8h", "How's everyone's rehearsal going? I've been practicing my routine for EIGHT HOURS STRAIGHT!"),
					say("Artistic Andy", StageLeft, "*", "That's... intense. I'm just putting final touches on my speed painting."),
					say("Musical Maria", StageRight, ":(", "Fiona, are you sure you're not overdoing it? You need to rest before the show."),
					say("Fitness Fiona", StageCenter, "!!", "REST? That's just another word for MISSED OPPORTUNITY! I'll sleep next week!"),
					say("Comedy Carl", StageLeft, "$20", "Twenty bucks says she passes out halfway through her routine."),
				},
			},
			{
				Setting: "night",
				Steps: []Step{
					say("Artistic Andy", StageLeft, "*clap*", "And now, our final performer of the night... Fitness Fiona!"),
					walk("Fitness Fiona", 480, ""),
					say("Fitness Fiona", StageCenter, "*", "PREPARE TO BE AMAZED by the power of DEDICATION and PROTEIN SHAKES!"),
					say("Musical Maria", StageRight, "!", "Wow, I never knew fitness could be so... expressive!"),
					say("Comedy Carl", StageLeft, "?!", "I can't believe she's still going. Is she even human?"),
					say("Fitness Fiona", StageCenter, "#1", "AND FOR MY FINALE - a handstand split while reciting the benefits of proper hydration!"),
				},
			},
		},
	},
	{
		ID:    "neighborFeud",
		Title: "The Neighbor Feud",
		Description: "When Grumpy Greg moves in next door to Fitness Fiona, their lifestyles immediately clash. " +
			"Can Fiona's positive energy overcome Greg's determination to live in peace and quiet?",
		Cast: []string{"Fitness Fiona", "Grumpy Greg", "Mediator Mike", "Peacemaker Penny"},
		Scenes: []Scene{
			{
				Setting: "morning",
				Steps: []Step{
					say("Fitness Fiona", StageCenter, "☼", "RISE AND SHINE NEIGHBORHOOD! Let's start with 100 JUMPING JACKS on the front lawn!"),
					say("Grumpy Greg", StageRight, "#@!", "HEY! Some people are trying to SLEEP around here! It's 6AM on a SATURDAY!"),
					say("Fitness Fiona", StageCenter, "*jump*", "You must be the new neighbor! Come join us! Exercise is the BEST way to start the day!"),
					say("Grumpy Greg", StageRight, "c[_]", "The best way to start MY day is with SILENCE and COFFEE! Turn that music down!"),
					say("Mediator Mike", StageLeft, "=", "Folks, let's try to find a compromise here. Fiona, maybe move workouts to 8AM?"),
				},
			},
			{
				Setting: "afternoon",
				Steps: []Step{
					walk("Grumpy Greg", 760, "Not another noisy event..."),
					say("Grumpy Greg", StageRight, "*read*", "Finally, some peace and quiet to enjoy my book in the garden..."),
					say("Fitness Fiona", StageCenter, "*slurp*", "PROTEIN SMOOTHIE TIME! Who wants to try my new KALE-BEET-GINGER BLAST?"),
					say("Grumpy Greg", StageRight, "*facepalm*", "For crying out loud! Is everything with you an announcement?"),
					say("Peacemaker Penny", StageLeft, "☺", "Greg, Fiona is just being friendly. Fiona, not everyone shares your... enthusiasm."),
					say("Fitness Fiona", StageCenter, "*", "I made you a smoothie too, Greg! NUTRIENTS ARE KEY TO HAPPINESS!"),
				},
			},
			{
				Setting: "evening",
				Steps: []Step{
					say("Grumpy Greg", StageRight, "@}-", "What happened to my garden? My prize roses are TRAMPLED!"),
					say("Fitness Fiona", StageCenter, "O_O", "Oh no! That might have happened during my tire-flip exercise... I'm SO sorry!"),
					say("Grumpy Greg", StageRight, "!!!", "That's IT! I'm calling a neighborhood meeting about proper boundaries!"),
					say("Fitness Fiona", StageCenter, "*sprout*", "Wait! I'll make it up to you! I'll replant everything AND teach you stress-relief exercises!"),
					say("Mediator Mike", StageLeft, "*think*", "You know what would help? If you both actually listened to each other for once."),
				},
			},
		},
	},
	{
		ID:          "bigEvent",
		Title:       "The Big Event",
		Description: "Musical Maria wants a neighborhood concert. Andy is in, Sam has doubts.",
		Cast:        []string{"Musical Maria", "Artistic Andy", "Skeptical Sam"},
		Scenes: []Scene{
			{
				Setting: "afternoon",
				Steps: []Step{
					say("Musical Maria", StageCenter, "♫", "Let's organize a neighborhood concert!"),
					walk("Artistic Andy", 400, ""),
					say("Artistic Andy", StageLeft, "~art~", "I'll design the posters!"),
					say("Skeptical Sam", StageRight, "-_-", "A concert? What could possibly go wrong..."),
				},
			},
		},
	},
}
