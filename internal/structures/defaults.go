package structures

// DefaultBoilerplatePhrases and DefaultBoilerplateWords are the built-in
// exclusion sets applied when the config leaves them unset. An explicitly
// empty set in the config is a validation error, not a fallback.

var DefaultBoilerplatePhrases = []string{
	"sounds good", "on my way", "be there", "see you", "got it",
	"ok", "okay", "yeah", "yep", "haha", "lol", "omg", "idk",
	"i know", "i think", "thank you", "thanks", "no problem",
	"good morning", "good night", "have a good", "talk to you",
	"let me know", "i will", "i can", "i dont", "do you", "are you",
	"what time", "how are", "im good", "thats good", "sounds great",
	"see you soon", "on the way", "almost there", "be right there",
	"im here", "where are", "whats up", "not much", "same here",
	"i feel like", "trying to", "going to", "want to", "need to",
	"have to", "about it", "about that", "it was", "it is", "that is",
	"that was", "this is", "i was", "i am", "kind of", "sort of",
	"a lot", "a bit", "so much", "too much", "right now", "at least",
	"i mean", "you know", "i guess", "i just", "just like", "like that",
	"like this", "for the", "in the", "on the", "to the", "at the",
	"and the", "but the", "with the", "from the", "of the", "is the",
	"was the", "be like", "would be", "could be", "should be", "might be",
	"dont know", "didnt know", "im not", "im gonna", "im going",
	"thats so", "its so", "so good", "so bad", "so many",
	"to talk about", "talk about it", "think about it", "about this",
	"gmail com", "yahoo com", "hotmail com",
}

var DefaultBoilerplateWords = []string{
	"the", "a", "an", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "do", "does", "did", "will", "would", "could",
	"should", "may", "might", "must", "shall", "can", "need",
	"to", "of", "in", "for", "on", "with", "at", "by",
	"from", "as", "into", "through", "during", "before", "after",
	"above", "below", "between", "under", "again", "further", "then",
	"once", "here", "there", "when", "where", "why", "how", "all", "each",
	"few", "more", "most", "other", "some", "such", "no", "nor", "not",
	"only", "own", "same", "so", "than", "too", "very", "just", "i", "me",
	"my", "myself", "we", "our", "you", "your", "he", "him", "his", "she",
	"her", "it", "its", "they", "them", "their", "what", "which", "who",
	"this", "that", "these", "those", "am", "but", "if", "or", "because",
	"and", "up", "down", "out", "off", "over", "now", "get", "got", "like",
	"going", "go", "come", "back", "want", "know", "think", "see", "look",
	"make", "take", "give", "well", "also", "way", "even", "new", "any",
	"say", "said", "one", "two", "first", "last", "long", "great", "little",
	"right", "still", "find", "tell", "ask", "work", "seem", "feel",
	"try", "leave", "call", "keep", "let", "show", "hear",
	"yeah", "yes", "oh", "ok", "okay", "um", "uh", "ah", "haha", "lol",
	"gonna", "wanna", "gotta", "kinda", "sorta", "maybe", "probably",
	"really", "actually", "basically", "literally", "definitely",
	"totally", "exactly", "usually", "always", "never", "sometimes",
	"often", "already", "honestly", "tbh", "idk", "bc", "tho", "rn",
	"omg", "lmao", "lmfao", "smh", "ngl", "imo", "btw", "fyi", "jk",
	"dont", "didnt", "cant", "couldnt", "wont", "wouldnt", "shouldnt",
	"im", "ive", "youre", "youve", "hes", "shes", "theyre", "theyve",
	"thats", "whats", "hows", "whos", "wheres", "theyll", "youll",
	"sorry", "thanks", "thank", "please", "hello", "hey", "hi", "bye",
	"sup", "yo", "dude", "bro", "cute", "nice", "cool", "awesome",
	"crazy", "weird", "random", "funny", "sad", "mad", "happy", "tired",
	"busy", "free", "late", "early", "soon", "quick", "fast", "slow",
	"hard", "easy", "bad", "worse", "worst", "better", "best",
	"fun", "fair", "true", "false", "wrong", "guess", "bet", "hope",
	"thought", "thinking", "feeling", "doing", "coming", "getting",
	"trying", "talking", "saying", "asking", "telling", "looking",
	"today", "tomorrow", "yesterday", "tonight", "morning", "night",
	"day", "week", "month", "year", "time", "thing", "things", "stuff",
	"lot", "bit", "much", "many", "people", "person",
	"something", "anything", "nothing", "everything", "someone", "anyone",
	"everyone", "kind", "sort", "type", "sense", "idea", "reason",
	"good", "fine", "sure", "real",
}
