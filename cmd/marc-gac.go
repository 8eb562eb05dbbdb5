package main

// geographic area codes, from the MARC code list for geographic areas.  Keys
// are stored without the trailing hyphen padding the source vocabulary uses.

var marcGeographicAreas = map[string]string{
	"a":       "Asia",
	"a-af":    "Afghanistan",
	"a-ai":    "Armenia (Republic)",
	"a-aj":    "Azerbaijan",
	"a-ba":    "Bahrain",
	"a-bg":    "Bangladesh",
	"a-bn":    "Borneo",
	"a-br":    "Burma",
	"a-bt":    "Bhutan",
	"a-bx":    "Brunei",
	"a-cb":    "Cambodia",
	"a-cc":    "China",
	"a-ccg":   "Yangtze River (China)",
	"a-ccp":   "Beijing (China)",
	"a-ce":    "Sri Lanka",
	"a-ch":    "Taiwan",
	"a-cy":    "Cyprus",
	"a-gs":    "Georgia (Republic)",
	"a-hk":    "Hong Kong",
	"a-ii":    "India",
	"a-io":    "Indonesia",
	"a-iq":    "Iraq",
	"a-ir":    "Iran",
	"a-is":    "Israel",
	"a-ja":    "Japan",
	"a-jo":    "Jordan",
	"a-kg":    "Kyrgyzstan",
	"a-kn":    "Korea (North)",
	"a-ko":    "Korea (South)",
	"a-kr":    "Korea",
	"a-ku":    "Kuwait",
	"a-kz":    "Kazakhstan",
	"a-le":    "Lebanon",
	"a-ls":    "Laos",
	"a-mh":    "Macao",
	"a-mk":    "Oman",
	"a-mp":    "Mongolia",
	"a-my":    "Malaysia",
	"a-np":    "Nepal",
	"a-nw":    "Northern Mariana Islands",
	"a-ph":    "Philippines",
	"a-pk":    "Pakistan",
	"a-pp":    "Papua New Guinea",
	"a-qa":    "Qatar",
	"a-si":    "Singapore",
	"a-sk":    "Sikkim",
	"a-su":    "Saudi Arabia",
	"a-sy":    "Syria",
	"a-ta":    "Tajikistan",
	"a-th":    "Thailand",
	"a-ti":    "Tibet",
	"a-tk":    "Turkmenistan",
	"a-ts":    "United Arab Emirates",
	"a-tu":    "Turkey",
	"a-uz":    "Uzbekistan",
	"a-vt":    "Vietnam",
	"a-ye":    "Yemen",
	"aa":      "Amur River (China and Russia)",
	"ab":      "Bengal, Bay of",
	"ag":      "Mekong River",
	"ah":      "Himalaya Mountains",
	"ai":      "Indochina",
	"am":      "Malaya",
	"an":      "East Asia",
	"ar":      "Arabian Peninsula",
	"as":      "Southeast Asia",
	"aw":      "Middle East",
	"awba":    "West Bank",
	"awgz":    "Gaza Strip",
	"ay":      "Yemen (People's Democratic Republic)",
	"az":      "South Asia",
	"b":       "Commonwealth countries",
	"c":       "Intercontinental areas (Western Hemisphere)",
	"cc":      "Caribbean Area",
	"cl":      "Latin America",
	"d":       "Developing countries",
	"dd":      "Developed countries",
	"e":       "Europe",
	"e-aa":    "Albania",
	"e-an":    "Andorra",
	"e-au":    "Austria",
	"e-be":    "Belgium",
	"e-bn":    "Bosnia and Herzegovina",
	"e-bu":    "Bulgaria",
	"e-bw":    "Belarus",
	"e-ci":    "Croatia",
	"e-cs":    "Czechoslovakia",
	"e-dk":    "Denmark",
	"e-er":    "Estonia",
	"e-fi":    "Finland",
	"e-fr":    "France",
	"e-ge":    "Germany (East)",
	"e-gi":    "Gibraltar",
	"e-gr":    "Greece",
	"e-gw":    "Germany (West)",
	"e-gx":    "Germany",
	"e-hu":    "Hungary",
	"e-ic":    "Iceland",
	"e-ie":    "Ireland",
	"e-it":    "Italy",
	"e-kv":    "Kosovo",
	"e-lh":    "Liechtenstein",
	"e-li":    "Lithuania",
	"e-lu":    "Luxembourg",
	"e-lv":    "Latvia",
	"e-mc":    "Monaco",
	"e-mm":    "Malta",
	"e-mo":    "Montenegro",
	"e-mv":    "Moldova",
	"e-ne":    "Netherlands",
	"e-no":    "Norway",
	"e-pl":    "Poland",
	"e-po":    "Portugal",
	"e-rb":    "Serbia",
	"e-rm":    "Romania",
	"e-ru":    "Russia (Federation)",
	"e-sm":    "San Marino",
	"e-sp":    "Spain",
	"e-sw":    "Sweden",
	"e-sz":    "Switzerland",
	"e-uk":    "Great Britain",
	"e-uk-en": "England",
	"e-uk-ni": "Northern Ireland",
	"e-uk-st": "Scotland",
	"e-uk-wl": "Wales",
	"e-un":    "Ukraine",
	"e-ur":    "Russia",
	"e-urk":   "Ukraine",
	"e-vc":    "Vatican City",
	"e-xn":    "North Macedonia",
	"e-xo":    "Slovakia",
	"e-xr":    "Czech Republic",
	"e-xv":    "Slovenia",
	"e-yu":    "Serbia and Montenegro",
	"ea":      "Alps",
	"eb":      "Baltic States",
	"ec":      "Central Europe",
	"ed":      "Balkan Peninsula",
	"ee":      "Eastern Europe",
	"el":      "Benelux countries",
	"en":      "Scandinavia",
	"eo":      "Danube River",
	"ep":      "Iberian Peninsula",
	"er":      "Rhine River",
	"es":      "Mediterranean Region",
	"ev":      "Soviet Union",
	"ew":      "Western Europe",
	"f":       "Africa",
	"f-ae":    "Algeria",
	"f-ao":    "Angola",
	"f-bd":    "Burundi",
	"f-bs":    "Botswana",
	"f-cd":    "Chad",
	"f-cf":    "Congo (Brazzaville)",
	"f-cg":    "Congo (Democratic Republic)",
	"f-cm":    "Cameroon",
	"f-cx":    "Central African Republic",
	"f-dm":    "Benin",
	"f-ea":    "Eritrea",
	"f-eg":    "Equatorial Guinea",
	"f-et":    "Ethiopia",
	"f-ft":    "Djibouti",
	"f-gh":    "Ghana",
	"f-gm":    "Gambia",
	"f-go":    "Gabon",
	"f-gv":    "Guinea",
	"f-iv":    "Côte d'Ivoire",
	"f-ke":    "Kenya",
	"f-lb":    "Liberia",
	"f-lo":    "Lesotho",
	"f-ly":    "Libya",
	"f-mg":    "Madagascar",
	"f-ml":    "Mali",
	"f-mr":    "Morocco",
	"f-mu":    "Mauritania",
	"f-mw":    "Malawi",
	"f-mz":    "Mozambique",
	"f-ng":    "Niger",
	"f-nr":    "Nigeria",
	"f-pg":    "Guinea-Bissau",
	"f-rh":    "Zimbabwe",
	"f-rw":    "Rwanda",
	"f-sa":    "South Africa",
	"f-sd":    "South Sudan",
	"f-sf":    "Sao Tome and Principe",
	"f-sg":    "Senegal",
	"f-sh":    "Spanish North Africa",
	"f-sj":    "Sudan",
	"f-sl":    "Sierra Leone",
	"f-so":    "Somalia",
	"f-sq":    "Eswatini",
	"f-ss":    "Western Sahara",
	"f-sx":    "Namibia",
	"f-tg":    "Togo",
	"f-ti":    "Tunisia",
	"f-tz":    "Tanzania",
	"f-ua":    "Egypt",
	"f-ug":    "Uganda",
	"f-uv":    "Burkina Faso",
	"f-za":    "Zambia",
	"fa":      "Atlas Mountains",
	"fb":      "Sub-Saharan Africa",
	"fc":      "Central Africa",
	"fd":      "Sahara",
	"fe":      "East Africa",
	"ff":      "North Africa",
	"fh":      "Horn of Africa",
	"fi":      "Nile River",
	"fl":      "Congo River",
	"fn":      "Northeast Africa",
	"fq":      "French-speaking Equatorial Africa",
	"fr":      "Great Rift Valley",
	"fs":      "Southern Africa",
	"fu":      "Suez Canal (Egypt)",
	"fv":      "Volta River (Ghana)",
	"fw":      "West Africa",
	"h":       "French Community",
	"i":       "Indian Ocean",
	"m":       "Intercontinental areas (Eastern Hemisphere)",
	"ma":      "Arab countries",
	"mb":      "Black Sea",
	"me":      "Eurasia",
	"mm":      "Mediterranean Sea",
	"mr":      "Red Sea",
	"n":       "North America",
	"n-cn":    "Canada",
	"n-cn-ab": "Alberta",
	"n-cn-bc": "British Columbia",
	"n-cn-mb": "Manitoba",
	"n-cn-nf": "Newfoundland and Labrador",
	"n-cn-nk": "New Brunswick",
	"n-cn-ns": "Nova Scotia",
	"n-cn-nt": "Northwest Territories",
	"n-cn-nu": "Nunavut",
	"n-cn-on": "Ontario",
	"n-cn-pi": "Prince Edward Island",
	"n-cn-qu": "Québec (Province)",
	"n-cn-sn": "Saskatchewan",
	"n-cn-yk": "Yukon Territory",
	"n-cnm":   "Maritime Provinces",
	"n-cnp":   "Prairie Provinces",
	"n-gl":    "Greenland",
	"n-mx":    "Mexico",
	"n-us":    "United States",
	"n-us-ak": "Alaska",
	"n-us-al": "Alabama",
	"n-us-ar": "Arkansas",
	"n-us-az": "Arizona",
	"n-us-ca": "California",
	"n-us-co": "Colorado",
	"n-us-ct": "Connecticut",
	"n-us-dc": "Washington (D.C.)",
	"n-us-de": "Delaware",
	"n-us-fl": "Florida",
	"n-us-ga": "Georgia",
	"n-us-hi": "Hawaii",
	"n-us-ia": "Iowa",
	"n-us-id": "Idaho",
	"n-us-il": "Illinois",
	"n-us-in": "Indiana",
	"n-us-ks": "Kansas",
	"n-us-ky": "Kentucky",
	"n-us-la": "Louisiana",
	"n-us-ma": "Massachusetts",
	"n-us-md": "Maryland",
	"n-us-me": "Maine",
	"n-us-mi": "Michigan",
	"n-us-mn": "Minnesota",
	"n-us-mo": "Missouri",
	"n-us-ms": "Mississippi",
	"n-us-mt": "Montana",
	"n-us-nb": "Nebraska",
	"n-us-nc": "North Carolina",
	"n-us-nd": "North Dakota",
	"n-us-nh": "New Hampshire",
	"n-us-nj": "New Jersey",
	"n-us-nm": "New Mexico",
	"n-us-nv": "Nevada",
	"n-us-ny": "New York (State)",
	"n-us-oh": "Ohio",
	"n-us-ok": "Oklahoma",
	"n-us-or": "Oregon",
	"n-us-pa": "Pennsylvania",
	"n-us-ri": "Rhode Island",
	"n-us-sc": "South Carolina",
	"n-us-sd": "South Dakota",
	"n-us-tn": "Tennessee",
	"n-us-tx": "Texas",
	"n-us-ut": "Utah",
	"n-us-va": "Virginia",
	"n-us-vt": "Vermont",
	"n-us-wa": "Washington (State)",
	"n-us-wi": "Wisconsin",
	"n-us-wv": "West Virginia",
	"n-us-wy": "Wyoming",
	"n-usa":   "Appalachian Mountains",
	"n-usc":   "Middle West",
	"n-use":   "Northeastern States",
	"n-usl":   "Middle Atlantic States",
	"n-usn":   "New England",
	"n-uso":   "Oldwest",
	"n-usp":   "West (U.S.)",
	"n-usr":   "East (U.S.)",
	"n-uss":   "Southern States",
	"n-ust":   "Southwest, New",
	"n-usu":   "Southeastern States",
	"nc":      "Central America",
	"ncc":     "Costa Rica",
	"nce":     "El Salvador",
	"ncg":     "Guatemala",
	"nch":     "Honduras",
	"ncn":     "Nicaragua",
	"ncp":     "Panama",
	"nl":      "Great Lakes (North America)",
	"nm":      "Mississippi River",
	"np":      "Great Plains",
	"nr":      "Rocky Mountains",
	"nw":      "West Indies",
	"nwbf":    "Bahamas",
	"nwcu":    "Cuba",
	"nwdr":    "Dominican Republic",
	"nwhi":    "Haiti",
	"nwjm":    "Jamaica",
	"nwpr":    "Puerto Rico",
	"nwtr":    "Trinidad and Tobago",
	"p":       "Pacific Ocean",
	"po":      "Oceania",
	"pn":      "Polynesia",
	"ps":      "South Pacific Ocean",
	"q":       "Cold regions",
	"r":       "Arctic regions",
	"s":       "South America",
	"s-ag":    "Argentina",
	"s-bl":    "Brazil",
	"s-bo":    "Bolivia",
	"s-ck":    "Colombia",
	"s-cl":    "Chile",
	"s-ec":    "Ecuador",
	"s-fg":    "French Guiana",
	"s-gy":    "Guyana",
	"s-pe":    "Peru",
	"s-py":    "Paraguay",
	"s-sr":    "Surinam",
	"s-uy":    "Uruguay",
	"s-ve":    "Venezuela",
	"sa":      "Amazon River",
	"sn":      "Andes",
	"sp":      "Rio de la Plata (Argentina and Uruguay)",
	"t":       "Antarctic Ocean; Antarctica",
	"u":       "Australasia",
	"u-at":    "Australia",
	"u-at-ne": "New South Wales",
	"u-at-no": "Northern Territory",
	"u-at-qn": "Queensland",
	"u-at-sa": "South Australia",
	"u-at-tm": "Tasmania",
	"u-at-vi": "Victoria",
	"u-at-we": "Western Australia",
	"u-nz":    "New Zealand",
	"w":       "Tropics",
	"x":       "Earth",
	"xa":      "Eastern Hemisphere",
	"xb":      "Northern Hemisphere",
	"xc":      "Southern Hemisphere",
	"xd":      "Western Hemisphere",
	"zju":     "Jupiter",
	"zma":     "Mars",
	"zme":     "Mercury",
	"zmo":     "Moon",
	"zo":      "Outer space",
	"zs":      "Solar system",
	"zve":     "Venus",
}
